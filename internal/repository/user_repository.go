package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"captionstudio/internal/errs"
	"captionstudio/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	// create user id
	user.UserID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO users (user_id, email, password_hash, refresh_token, refresh_token_expiry_time)
		VALUES (:user_id, :email, :password_hash, :refresh_token, :refresh_token_expiry_time)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFound("пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewNotFound("пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, errs.NewUnauthorized("неверный пароль")
	}

	return user, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE user_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении refresh token: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	var user models.User

	query := `
		SELECT * FROM users
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &user, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewUnauthorized("недействительный или просроченный refresh token")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по refresh token: %w", err)
	}

	return &user, nil
}
