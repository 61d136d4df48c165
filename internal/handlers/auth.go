// auth.go
//
// Relational replacement for the Monastery360 browser localStorage data layer
// Copyright (c) 2026 Monastery360 Project
//
// This file is part of monastery360-datastore.
// monastery360-datastore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// monastery360-datastore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with
// monastery360-datastore. If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/monastery360/datastore/internal/identity"
	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/services"
	"github.com/monastery360/datastore/internal/utils"
)

// AuthHandler handles session and registration routes
type AuthHandler struct {
	Ctx      *services.Context
	Verifier identity.Verifier
}

// sessionTokenInput is the payload for provider-backed sign-in.
type sessionTokenInput struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// loginInput is the payload for local-credential sign-in.
type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
// @Summary Sign in with local credentials
// @Description Authenticate against the stored user collection and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginInput true "Email and password"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "auth.login")
	}

	user, err := services.Authenticate(h.Ctx, in.Email, in.Password)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "auth.login")
	}

	return c.Status(fiber.StatusOK).JSON(sessionResponse{Ok: true, User: redactUser(user)})
}

// Register handles POST /api/auth/register
// @Summary Register a local account
// @Description Create a user record and open a session for it
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body services.RegistrationInput true "Registration data"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.RegistrationInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "auth.register")
	}

	user, err := services.RegisterUser(h.Ctx, in)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.ErrorResponse(c, identity.ProviderMessage("auth/email-already-in-use"),
				fiber.StatusConflict, "auth.register")
		}
		if errors.Is(err, services.ErrStoreWrite) {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auth.register")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "auth.register")
	}

	return c.Status(fiber.StatusCreated).JSON(sessionResponse{Ok: true, User: redactUser(user)})
}

// Session handles POST /api/auth/session
// @Summary Sign in with an identity provider credential
// @Description Verify a provider token, reconcile it with the user collection, and open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param session body sessionTokenInput true "Provider token and optional profile hints"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 501 {object} utils.ErrorResponseStruct
// @Router /auth/session [post]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	if h.Verifier == nil {
		return utils.ErrorResponse(c, "No identity provider configured",
			fiber.StatusNotImplemented, "auth.session")
	}

	var in sessionTokenInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "auth.session")
	}
	if in.Token == "" {
		return utils.ErrorResponse(c, "Missing credential token", fiber.StatusBadRequest, "auth.session")
	}
	if in.Role != "" && !models.ValidRole(in.Role) {
		return utils.ErrorResponse(c, "Please select your role", fiber.StatusBadRequest, "auth.session")
	}

	ident, err := h.Verifier.Verify(c.Context(), in.Token)
	if err != nil {
		return utils.ErrorResponse(c, identity.ProviderMessage(""), fiber.StatusUnauthorized, "auth.session")
	}

	user, err := services.EnsureProfile(h.Ctx, *ident, services.EnsureProfileOptions{
		DefaultRole: in.Role,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
	})
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auth.session")
	}

	return c.Status(fiber.StatusOK).JSON(sessionResponse{Ok: true, User: redactUser(user)})
}

// Logout handles POST /api/auth/logout
// @Summary End the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	services.SignOut(h.Ctx)
	return c.Status(fiber.StatusOK).JSON(sessionResponse{Ok: true})
}

// Me handles GET /api/auth/me
// @Summary Get the signed-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} sessionResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := h.Ctx.CurrentUser()
	if user == nil {
		return utils.ErrorResponse(c, "No active session", fiber.StatusUnauthorized, "auth.me")
	}
	return c.Status(fiber.StatusOK).JSON(sessionResponse{Ok: true, User: redactUser(user)})
}
