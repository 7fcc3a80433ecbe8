package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"roam/internal/models"
)

const duplicateKeyErr = 1062

// MySQLStore implements Store over a *sql.DB. Uniqueness of emails and
// match pairs comes from UNIQUE keys in the schema; duplicate-key errors
// are mapped to the store sentinels.
type MySQLStore struct {
	DB *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db}
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == duplicateKeyErr
}

const userColumns = `id, email, password_hash, name, gender, age, race, reason, bio, location,
	interests, drinking, smokes, exercise, education, has_pets, has_kids,
	criminal_record, weight_kg, weight_lbs, photos, is_profile_complete,
	subscription, likes_remaining, created_at`

func (s *MySQLStore) CreateUser(ctx context.Context, u *models.User) error {
	interests, err := json.Marshal(u.Interests)
	if err != nil {
		return err
	}
	photos, err := json.Marshal(u.Photos)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Gender, u.Age, u.Race, u.Reason, u.Bio, u.Location,
		string(interests), u.Drinking, u.Smokes, u.Exercise, u.Education, u.HasPets, u.HasKids,
		u.CriminalRecord, u.WeightKg, u.WeightLbs, string(photos), u.IsProfileComplete,
		u.Subscription, u.LikesRemaining, u.CreatedAt)
	if isDuplicateKey(err) {
		return ErrDuplicateEmail
	}
	return err
}

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var interests, photos string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Gender, &u.Age, &u.Race,
		&u.Reason, &u.Bio, &u.Location, &interests, &u.Drinking, &u.Smokes, &u.Exercise,
		&u.Education, &u.HasPets, &u.HasKids, &u.CriminalRecord, &u.WeightKg, &u.WeightLbs,
		&photos, &u.IsProfileComplete, &u.Subscription, &u.LikesRemaining, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	if interests != "" {
		_ = json.Unmarshal([]byte(interests), &u.Interests)
	}
	if photos != "" {
		_ = json.Unmarshal([]byte(photos), &u.Photos)
	}
	return &u, nil
}

func (s *MySQLStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (s *MySQLStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// UpdateUser applies only the fields present in upd. Building the SET
// clause by hand keeps the partial semantics: absent pointers produce no
// assignment at all.
func (s *MySQLStore) UpdateUser(ctx context.Context, id string, upd models.ProfileUpdate) error {
	var sets []string
	var args []any
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Gender != nil {
		add("gender", *upd.Gender)
	}
	if upd.Age != nil {
		add("age", *upd.Age)
	}
	if upd.Race != nil {
		add("race", *upd.Race)
	}
	if upd.Reason != nil {
		add("reason", *upd.Reason)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Interests != nil {
		b, err := json.Marshal(*upd.Interests)
		if err != nil {
			return err
		}
		add("interests", string(b))
	}
	if upd.Drinking != nil {
		add("drinking", *upd.Drinking)
	}
	if upd.Smokes != nil {
		add("smokes", *upd.Smokes)
	}
	if upd.Exercise != nil {
		add("exercise", *upd.Exercise)
	}
	if upd.Education != nil {
		add("education", *upd.Education)
	}
	if upd.HasPets != nil {
		add("has_pets", *upd.HasPets)
	}
	if upd.HasKids != nil {
		add("has_kids", *upd.HasKids)
	}
	if upd.CriminalRecord != nil {
		add("criminal_record", *upd.CriminalRecord)
	}
	if upd.WeightKg != nil {
		add("weight_kg", *upd.WeightKg)
	}
	if upd.WeightLbs != nil {
		add("weight_lbs", *upd.WeightLbs)
	}
	if upd.Photos != nil {
		b, err := json.Marshal(*upd.Photos)
		if err != nil {
			return err
		}
		add("photos", string(b))
	}
	if upd.IsProfileComplete != nil {
		add("is_profile_complete", *upd.IsProfileComplete)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// RowsAffected is 0 both for a missing row and a no-op update, so
		// confirm the user exists.
		if _, err := s.GetUserByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) SetSubscription(ctx context.Context, id, tier string, likesRemaining int) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET subscription = ?, likes_remaining = ? WHERE id = ?`,
		tier, likesRemaining, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := s.GetUserByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) FindDiscoverable(ctx context.Context, exclude []string, limit int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_profile_complete = TRUE`
	var args []any
	if len(exclude) > 0 {
		query += ` AND id NOT IN (?` + strings.Repeat(", ?", len(exclude)-1) + `)`
		for _, id := range exclude {
			args = append(args, id)
		}
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *MySQLStore) CreateSwipe(ctx context.Context, sw *models.Swipe) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO swipes (id, user_id, target_user_id, direction, created_at) VALUES (?, ?, ?, ?, ?)`,
		sw.ID, sw.UserID, sw.TargetUserID, sw.Direction, sw.CreatedAt)
	return err
}

func (s *MySQLStore) HasRightSwipe(ctx context.Context, userID, targetID string) (bool, error) {
	var one int
	err := s.DB.QueryRowContext(ctx,
		`SELECT 1 FROM swipes WHERE user_id = ? AND target_user_id = ? AND direction = 'right' LIMIT 1`,
		userID, targetID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (s *MySQLStore) SwipedTargetIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT DISTINCT target_user_id FROM swipes WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *MySQLStore) CreateMatch(ctx context.Context, m *models.Match) error {
	// uniq_pair (user_a, user_b) makes this the atomic check-then-insert:
	// the second of two concurrent inserts for the same pair gets 1062.
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO matches (id, user_a, user_b, created_at) VALUES (?, ?, ?, ?)`,
		m.ID, m.UserA, m.UserB, m.CreatedAt)
	if isDuplicateKey(err) {
		return ErrDuplicatePair
	}
	return err
}

func (s *MySQLStore) MatchesForUser(ctx context.Context, userID string) ([]*models.Match, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, user_a, user_b, created_at FROM matches WHERE user_a = ? OR user_b = ?`,
		userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.UserA, &m.UserB, &m.CreatedAt); err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}
