package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotel-reservation/internal/models"
	_ "modernc.org/sqlite"
)

// MemoryDSN selects a throwaway in-memory database. This is the default:
// the application does not persist state across restarts unless an on-disk
// path is configured explicitly.
const MemoryDSN = ":memory:"

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn, err := resolveDSN(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One interactive operator, one writer. A single connection also keeps
	// an in-memory database alive for the process lifetime instead of
	// vanishing with each pooled connection.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func resolveDSN(path string) (string, error) {
	if path == "" || path == MemoryDSN {
		return "file::memory:", nil
	}

	abs := filepath.Clean(path)
	if !strings.HasSuffix(abs, ".db") {
		abs = filepath.Join(abs, "store.db")
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o750); err != nil {
		return "", err
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", abs), nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA foreign_keys = ON;",
		"CREATE TABLE IF NOT EXISTS rooms (number INTEGER PRIMARY KEY, type TEXT NOT NULL, available INTEGER NOT NULL DEFAULT 1);",
		"CREATE TABLE IF NOT EXISTS users (username TEXT PRIMARY KEY, password TEXT NOT NULL, created_at TEXT NOT NULL);",
		"CREATE TABLE IF NOT EXISTS bookings (id TEXT PRIMARY KEY, room_number INTEGER NOT NULL UNIQUE, username TEXT NOT NULL, created_at TEXT NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(username, created_at);",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRoom(room *models.Room) error {
	available := 0
	if room.Available {
		available = 1
	}
	_, err := s.db.Exec(`INSERT INTO rooms (number, type, available) VALUES (?, ?, ?)
		ON CONFLICT(number) DO UPDATE SET type = excluded.type, available = excluded.available`,
		room.Number, string(room.Type), available)
	return err
}

func (s *SQLiteStore) GetRoomByNumber(number int) (*models.Room, error) {
	var (
		roomType  string
		available int
	)
	err := s.db.QueryRow(`SELECT type, available FROM rooms WHERE number = ?`, number).Scan(&roomType, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &models.Room{
		Number:    number,
		Type:      models.RoomType(roomType),
		Available: available != 0,
	}, nil
}

func (s *SQLiteStore) ListAvailableRooms() ([]*models.Room, error) {
	rows, err := s.db.Query(`SELECT number, type FROM rooms WHERE available = 1 ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var rooms []*models.Room
	for rows.Next() {
		var (
			number   int
			roomType string
		)
		if err := rows.Scan(&number, &roomType); err != nil {
			return nil, err
		}
		rooms = append(rooms, &models.Room{
			Number:    number,
			Type:      models.RoomType(roomType),
			Available: true,
		})
	}
	return rooms, rows.Err()
}

// MarkRoomBooked flips the availability flag with a compare-and-set so a
// room can never be claimed twice, even if this store is ever shared by
// concurrent operators.
func (s *SQLiteStore) MarkRoomBooked(number int) error {
	res, err := s.db.Exec(`UPDATE rooms SET available = 0 WHERE number = ? AND available = 1`, number)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.GetRoomByNumber(number); err != nil {
			return err
		}
		return models.ErrRoomAlreadyBooked
	}
	return nil
}

// MarkRoomVacant sets the availability flag unconditionally; vacating an
// already vacant room is not an error.
func (s *SQLiteStore) MarkRoomVacant(number int) error {
	res, err := s.db.Exec(`UPDATE rooms SET available = 1 WHERE number = ?`, number)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrRoomNotFound
	}
	return nil
}

func (s *SQLiteStore) CountRooms() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLiteStore) CreateUser(user *models.User) error {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM users WHERE username = ?`, user.Username).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return models.ErrDuplicateUsername
	}

	_, err = s.db.Exec(`INSERT INTO users (username, password, created_at) VALUES (?, ?, ?)`,
		user.Username, user.Password, user.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// GetUserByUsername returns (nil, nil) when no such account exists.
func (s *SQLiteStore) GetUserByUsername(username string) (*models.User, error) {
	var (
		password  string
		createdAt string
	)
	err := s.db.QueryRow(`SELECT password, created_at FROM users WHERE username = ?`, username).Scan(&password, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Username:  username,
		Password:  password,
		CreatedAt: ts,
	}, nil
}

func (s *SQLiteStore) CreateBooking(booking *models.Booking) error {
	_, err := s.db.Exec(`INSERT INTO bookings (id, room_number, username, created_at) VALUES (?, ?, ?, ?)`,
		booking.ID, booking.RoomNumber, booking.Username, booking.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// GetBookingForRoom returns (nil, nil) when the room has no active booking.
func (s *SQLiteStore) GetBookingForRoom(roomNumber int) (*models.Booking, error) {
	var (
		id        string
		username  string
		createdAt string
	)
	err := s.db.QueryRow(`SELECT id, username, created_at FROM bookings WHERE room_number = ?`, roomNumber).
		Scan(&id, &username, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return scanBooking(id, roomNumber, username, createdAt)
}

// ListBookingsForUser returns the user's bookings in insertion order, which
// keeps the displayed room numbers in the order they were booked. rowid is
// the insertion order; the trimmed RFC3339Nano timestamps are not safely
// sortable as text.
func (s *SQLiteStore) ListBookingsForUser(username string) ([]*models.Booking, error) {
	rows, err := s.db.Query(`SELECT id, room_number, created_at FROM bookings WHERE username = ? ORDER BY rowid`, username)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var bookings []*models.Booking
	for rows.Next() {
		var (
			id        string
			number    int
			createdAt string
		)
		if err := rows.Scan(&id, &number, &createdAt); err != nil {
			return nil, err
		}
		booking, err := scanBooking(id, number, username, createdAt)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (s *SQLiteStore) DeleteBooking(id string) error {
	_, err := s.db.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	return err
}

func scanBooking(id string, roomNumber int, username, createdAt string) (*models.Booking, error) {
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, err
	}
	return &models.Booking{
		ID:         id,
		RoomNumber: roomNumber,
		Username:   username,
		CreatedAt:  ts,
	}, nil
}
