package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"
	"github.com/42795748/Raindrop-Convert-HTML/internal/service"
)

// folderItem is one row of the folder pane
type folderItem struct {
	ID    *int // nil for the root level
	Name  string
	Level int // nesting depth, 0 = top-level folder
}

// App is the read-only library browser: a folder pane, an item pane,
// a detail pane and an incremental search line.
type App struct {
	app            *tview.Application
	folderList     *tview.List
	list           *tview.List
	detail         *tview.TextView
	search         *tview.InputField
	status         *tview.TextView
	bookmarkSvc    *service.BookmarkService
	folderSvc      *service.FolderService
	allItems       []models.Item // items of the current folder, unfiltered
	items          []models.Item // items currently displayed
	folderItems    []folderItem
	selectedFolder *int // nil = root level
	focusOnFolders bool
}

// NewApp creates a new application instance
func NewApp(bookmarkSvc *service.BookmarkService, folderSvc *service.FolderService) *App {
	return &App{
		app:         tview.NewApplication(),
		folderList:  tview.NewList().ShowSecondaryText(false),
		list:        tview.NewList().ShowSecondaryText(false),
		detail:      tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		search:      tview.NewInputField().SetLabel("Search: "),
		status:      tview.NewTextView().SetDynamicColors(true),
		bookmarkSvc: bookmarkSvc,
		folderSvc:   folderSvc,
	}
}

// Run starts the application
func (a *App) Run() error {
	a.folderList.SetBorder(true).SetTitle("Folders")
	a.list.SetBorder(true).SetTitle("Items")
	a.detail.SetBorder(true).SetTitle("Details")

	cols := tview.NewFlex().
		AddItem(a.folderList, 0, 1, false).
		AddItem(a.list, 0, 3, true).
		AddItem(a.detail, 0, 1, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.search, 1, 0, false).
		AddItem(cols, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	if err := a.fillFolderList(); err != nil {
		return err
	}
	if err := a.loadFolderContent(); err != nil {
		return err
	}

	a.search.SetChangedFunc(a.applyFilter)
	a.search.SetDoneFunc(func(key tcell.Key) {
		a.app.SetFocus(a.list)
	})
	a.list.SetChangedFunc(a.onSelect)

	a.app.SetRoot(main, true)
	a.app.SetInputCapture(a.globalInput)
	a.updateStatus()
	a.app.SetFocus(a.list)
	return a.app.Run()
}

// fillFolderList rebuilds the folder pane: the root level first, then
// every folder depth-first with indentation per level.
func (a *App) fillFolderList() error {
	folders, err := a.folderSvc.ListAll()
	if err != nil {
		return err
	}

	children := make(map[int][]models.Folder)
	var roots []models.Folder
	for _, f := range folders {
		if f.ParentID == nil {
			roots = append(roots, f)
		} else {
			children[*f.ParentID] = append(children[*f.ParentID], f)
		}
	}

	a.folderItems = []folderItem{{ID: nil, Name: "Library", Level: 0}}
	var add func(f models.Folder, level int)
	add = func(f models.Folder, level int) {
		id := f.ID
		a.folderItems = append(a.folderItems, folderItem{ID: &id, Name: f.Name, Level: level})
		for _, c := range children[f.ID] {
			add(c, level+1)
		}
	}
	for _, f := range roots {
		add(f, 0)
	}

	a.folderList.Clear()
	for _, item := range a.folderItems {
		label := strings.Repeat("  ", item.Level) + item.Name
		a.folderList.AddItem(label, "", 0, nil)
	}
	return nil
}

// loadFolderContent fetches the selected folder's items and reapplies
// the current search filter.
func (a *App) loadFolderContent() error {
	var err error
	a.allItems, err = a.folderSvc.Content(a.selectedFolder)
	if err != nil {
		a.allItems = nil
	}
	a.applyFilter(a.search.GetText())

	if a.selectedFolder == nil {
		a.list.SetTitle("Items (Library)")
	} else if folder, ferr := a.folderSvc.GetByID(*a.selectedFolder); ferr == nil && folder != nil {
		a.list.SetTitle(fmt.Sprintf("Items (%s)", folder.Name))
	} else {
		a.list.SetTitle("Items")
	}
	return err
}

func (a *App) applyFilter(text string) {
	if text == "" {
		a.items = a.allItems
		a.fillList()
		return
	}

	textLower := strings.ToLower(text)
	var filtered []models.Item
	for _, item := range a.allItems {
		if strings.Contains(strings.ToLower(item.Name), textLower) {
			filtered = append(filtered, item)
			continue
		}
		if item.Type == models.ItemTypeBookmark && item.URL != nil &&
			strings.Contains(strings.ToLower(*item.URL), textLower) {
			filtered = append(filtered, item)
		}
	}
	a.items = filtered
	a.fillList()
}

func (a *App) fillList() {
	a.list.Clear()
	for _, item := range a.items {
		label := item.Name
		if item.Type == models.ItemTypeFolder {
			label = "[yellow]" + tview.Escape(item.Name+"/") + "[-]"
		} else {
			label = tview.Escape(label)
		}
		a.list.AddItem(label, "", 0, nil)
	}
	a.onSelect(a.list.GetCurrentItem(), "", "", 0)
	a.updateStatus()
}

func (a *App) onSelect(index int, _ string, _ string, _ rune) {
	if index < 0 || index >= len(a.items) {
		a.detail.SetText("")
		return
	}
	item := a.items[index]
	if item.Type == models.ItemTypeFolder {
		a.detail.SetText(fmt.Sprintf("[yellow]Folder[-]\n\n%s", tview.Escape(item.Name)))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[::b]%s[::-]\n\n", tview.Escape(item.Name))
	if item.URL != nil {
		fmt.Fprintf(&sb, "[blue]%s[-]\n\n", tview.Escape(*item.URL))
	}
	if item.AddDate != nil && *item.AddDate != 0 {
		fmt.Fprintf(&sb, "Added: %s\n", time.Unix(*item.AddDate, 0).Format("2006-01-02 15:04"))
	}
	a.detail.SetText(sb.String())
}

func (a *App) updateStatus() {
	var bookmarkCount, folderCount int
	for _, item := range a.items {
		if item.Type == models.ItemTypeBookmark {
			bookmarkCount++
		} else {
			folderCount++
		}
	}
	a.status.SetText(fmt.Sprintf(
		"[::b]Tab[::r] switch  [::b]/[::r] search  [::b]Enter[::r] open/select  [::b]q[::r] quit  %d bookmarks, %d folders",
		bookmarkCount, folderCount))
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.app.GetFocus() == a.search {
		return event
	}

	switch event.Key() {
	case tcell.KeyTab:
		a.focusOnFolders = !a.focusOnFolders
		if a.focusOnFolders {
			a.app.SetFocus(a.folderList)
		} else {
			a.app.SetFocus(a.list)
		}
		return nil
	case tcell.KeyEnter:
		if a.focusOnFolders {
			a.selectFolder(a.folderList.GetCurrentItem())
		} else {
			a.openCurrent()
		}
		return nil
	}

	switch event.Rune() {
	case 'q':
		a.app.Stop()
		return nil
	case '/':
		a.app.SetFocus(a.search)
		return nil
	}
	return event
}

// selectFolder switches the item pane to the folder at the given index
// of the folder pane.
func (a *App) selectFolder(index int) {
	if index < 0 || index >= len(a.folderItems) {
		return
	}
	item := a.folderItems[index]
	if item.ID == nil {
		a.selectedFolder = nil
	} else {
		id := *item.ID
		a.selectedFolder = &id
	}
	a.loadFolderContent()
}

// openCurrent opens the selected bookmark in the system browser, or
// descends into the selected folder.
func (a *App) openCurrent() {
	index := a.list.GetCurrentItem()
	if index < 0 || index >= len(a.items) {
		return
	}
	item := a.items[index]
	if item.Type == models.ItemTypeFolder {
		id := item.ID
		a.selectedFolder = &id
		a.loadFolderContent()
		return
	}
	if item.URL != nil {
		openBrowser(*item.URL)
	}
}

func openBrowser(url string) {
	switch runtime.GOOS {
	case "darwin":
		exec.Command("open", url).Start()
	case "windows":
		exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		exec.Command("xdg-open", url).Start()
	}
}
