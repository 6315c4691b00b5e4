package v1

import (
	"strconv"

	"github.com/avododokhov/numisvault/internal/auth"
	"github.com/avododokhov/numisvault/internal/models/user"
	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"omitempty,min=8,max=72"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	IsActive  *bool  `json:"is_active"`
}

// ListUsers returns all accounts. Password hashes are never serialized.
func ListUsers(c *fiber.Ctx) error {
	users, err := user.ListUsers(c.UserContext(), DB)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, users)
}

// GetUser returns one account by id.
func GetUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	u, err := user.GetUserByID(c.UserContext(), DB, id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, u)
}

// RegisterUser creates an account. Email addresses are unique; a
// duplicate is reported as a validation failure rather than a storage
// error so the caller can correct it.
func RegisterUser(c *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	existing, err := user.GetUserByEmail(c.UserContext(), DB, req.Email)
	if err != nil {
		return utils.SendError(c, err)
	}
	if existing != nil {
		return utils.SendError(c, utils.ValidationError("Email is already registered"))
	}

	u := user.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}
	if err := user.CreateUser(c.UserContext(), DB, &u, req.Password); err != nil {
		return utils.SendError(c, err)
	}

	Logger.Info(c.UserContext()).WithMeta(utils.Map{"email": u.Email}).Logs("User registered")
	return utils.Success(c).WithStatus(fiber.StatusCreated).WithData(u).Send()
}

// LoginUser verifies credentials and issues a 24-hour token. An unknown
// email and a wrong password produce the same response.
func LoginUser(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	u, err := user.GetUserByEmail(c.UserContext(), DB, req.Email)
	if err != nil {
		return utils.SendError(c, err)
	}
	if u == nil || utils.ComparePasswords(u.PasswordHash, req.Password) != nil {
		return utils.SendError(c, utils.ErrUnauthorized)
	}

	token, err := auth.GenerateToken(Cfg.JWTSecret, strconv.Itoa(u.ID), u.Email, u.Username)
	if err != nil {
		return utils.SendError(c, utils.StorageError(err))
	}

	Logger.Info(c.UserContext()).WithMeta(utils.Map{"email": u.Email}).Logs("User logged in")
	return utils.SendSuccess(c, fiber.Map{"token": token, "user": u})
}

// UpdateUser replaces the editable profile fields. A non-empty password
// in the payload replaces the stored one.
func UpdateUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req updateUserRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	u := user.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if err := user.UpdateUser(c.UserContext(), DB, id, &u, req.Password); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, u)
}

// DeleteUser removes an account.
func DeleteUser(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := user.DeleteUser(c.UserContext(), DB, id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.Success(c).WithMessage("User deleted successfully").Send()
}
