package repository

import (
	"database/sql"

	"github.com/42795748/Raindrop-Convert-HTML/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db        *sql.DB
	bookmarks *bookmarkRepo
	folders   *folderRepo
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	repo := &SQLiteRepository{
		db: db,
	}
	repo.bookmarks = &bookmarkRepo{db: db}
	repo.folders = &folderRepo{db: db}

	return repo, nil
}

func initSchema(db *sql.DB) error {
	createTables := `
	CREATE TABLE IF NOT EXISTS folders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		parent_id INTEGER,
		FOREIGN KEY(parent_id) REFERENCES folders(id)
	);

	CREATE TABLE IF NOT EXISTS bookmarks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		add_date INTEGER NOT NULL DEFAULT 0,
		folder_id INTEGER,
		FOREIGN KEY(folder_id) REFERENCES folders(id)
	);

	CREATE INDEX IF NOT EXISTS idx_bookmarks_folder ON bookmarks(folder_id);
	CREATE INDEX IF NOT EXISTS idx_folders_parent ON folders(parent_id);
	`
	_, err := db.Exec(createTables)
	return err
}

// Bookmarks returns the bookmark repository
func (r *SQLiteRepository) Bookmarks() BookmarkRepository {
	return r.bookmarks
}

// Folders returns the folder repository
func (r *SQLiteRepository) Folders() FolderRepository {
	return r.folders
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// bookmarkRepo implements BookmarkRepository
type bookmarkRepo struct {
	db *sql.DB
}

func (r *bookmarkRepo) List() ([]models.Bookmark, error) {
	rows, err := r.db.Query(`
		SELECT b.id, b.title, b.url, b.add_date, b.folder_id, f.name
		FROM bookmarks AS b
		LEFT JOIN folders AS f ON f.id = b.folder_id
		WHERE b.url <> ''
		ORDER BY b.title
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.Title, &b.URL, &b.AddDate, &b.FolderID, &b.FolderName); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

func (r *bookmarkRepo) GetByID(id int) (*models.Bookmark, error) {
	var b models.Bookmark
	err := r.db.QueryRow(`
		SELECT b.id, b.title, b.url, b.add_date, b.folder_id, f.name
		FROM bookmarks AS b
		LEFT JOIN folders AS f ON f.id = b.folder_id
		WHERE b.id = ?
	`, id).Scan(&b.ID, &b.Title, &b.URL, &b.AddDate, &b.FolderID, &b.FolderName)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookmarkRepo) GetByURL(url string) (*models.Bookmark, error) {
	var b models.Bookmark
	err := r.db.QueryRow(`
		SELECT b.id, b.title, b.url, b.add_date, b.folder_id, f.name
		FROM bookmarks AS b
		LEFT JOIN folders AS f ON f.id = b.folder_id
		WHERE b.url = ?
	`, url).Scan(&b.ID, &b.Title, &b.URL, &b.AddDate, &b.FolderID, &b.FolderName)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookmarkRepo) Create(b *models.Bookmark) error {
	res, err := r.db.Exec(
		`INSERT INTO bookmarks(title, url, add_date, folder_id) VALUES (?, ?, ?, ?)`,
		b.Title, b.URL, b.AddDate, b.FolderID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = int(id)
	return nil
}

func (r *bookmarkRepo) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM bookmarks WHERE id = ?`, id)
	return err
}

// folderRepo implements FolderRepository
type folderRepo struct {
	db *sql.DB
}

func (r *folderRepo) List() ([]models.Folder, error) {
	rows, err := r.db.Query(`SELECT id, name, parent_id FROM folders ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.ParentID); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (r *folderRepo) GetByID(id int) (*models.Folder, error) {
	var f models.Folder
	err := r.db.QueryRow(`SELECT id, name, parent_id FROM folders WHERE id = ?`, id).
		Scan(&f.ID, &f.Name, &f.ParentID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *folderRepo) Create(name string, parentID *int) (*models.Folder, error) {
	res, err := r.db.Exec(`INSERT INTO folders(name, parent_id) VALUES (?, ?)`, name, parentID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Folder{ID: int(id), Name: name, ParentID: parentID}, nil
}

func (r *folderRepo) Upsert(name string, parentID *int) (*models.Folder, error) {
	var id int
	err := r.db.QueryRow(
		`SELECT id FROM folders WHERE name = ? AND (parent_id IS ? OR parent_id = ?)`,
		name, parentID, parentID,
	).Scan(&id)

	if err == nil {
		return &models.Folder{ID: id, Name: name, ParentID: parentID}, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	return r.Create(name, parentID)
}

func (r *folderRepo) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM folders WHERE id = ?`, id)
	return err
}

func (r *folderRepo) Content(folderID *int) ([]models.Item, error) {
	var items []models.Item

	folderRows, err := r.db.Query(
		`SELECT id, name, parent_id FROM folders WHERE (parent_id IS ? OR parent_id = ?) ORDER BY name`,
		folderID, folderID,
	)
	if err != nil {
		return nil, err
	}
	defer folderRows.Close()

	for folderRows.Next() {
		var f models.Folder
		if err := folderRows.Scan(&f.ID, &f.Name, &f.ParentID); err != nil {
			return nil, err
		}
		items = append(items, models.Item{
			Type:     models.ItemTypeFolder,
			ID:       f.ID,
			Name:     f.Name,
			ParentID: f.ParentID,
		})
	}
	if err := folderRows.Err(); err != nil {
		return nil, err
	}

	bookmarkRows, err := r.db.Query(
		`SELECT id, title, url, add_date, folder_id FROM bookmarks WHERE (folder_id IS ? OR folder_id = ?) ORDER BY title`,
		folderID, folderID,
	)
	if err != nil {
		return nil, err
	}
	defer bookmarkRows.Close()

	for bookmarkRows.Next() {
		var b models.Bookmark
		if err := bookmarkRows.Scan(&b.ID, &b.Title, &b.URL, &b.AddDate, &b.FolderID); err != nil {
			return nil, err
		}
		url := b.URL
		addDate := b.AddDate
		items = append(items, models.Item{
			Type:     models.ItemTypeBookmark,
			ID:       b.ID,
			Name:     b.Title,
			URL:      &url,
			AddDate:  &addDate,
			ParentID: b.FolderID,
		})
	}
	return items, bookmarkRows.Err()
}
