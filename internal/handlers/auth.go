package handlers

import (
	"errors"
	"net/http"

	"quizforge/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type logInRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// bindFormOrFail binds the form body into dst; on failure it writes a 400 and
// reports false.
func (h *Handler) bindFormOrFail(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": statusFail, "msg": err.Error()})
		return false
	}
	return true
}

// failSoft writes the spec'd soft failure: HTTP 200 with status "fail".
func failSoft(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"status": statusFail, "msg": msg})
}

// serverError logs err and writes a generic 500 body.
func (h *Handler) serverError(c *gin.Context, logKey string, err error) {
	if h.log != nil && err != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"status": statusFail, "msg": "internal error"})
}

// @Summary      Create an account
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Display name"
// @Param        email     formData  string  true  "Unique email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  map[string]string  "status, msg"
// @Failure      400  {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindFormOrFail(c, &input); !ok {
		return
	}

	err := h.services.SignUp(c.Request.Context(), input.Username, input.Email, input.Password)
	if errors.Is(err, service.ErrEmailTaken) {
		failSoft(c, "Email already registered")
		return
	}
	if err != nil {
		h.serverError(c, "sign_up_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "msg": "Account created!"})
}

// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  map[string]string  "status, token"
// @Failure      400  {object}  map[string]string
// @Router       /login [post]
func (h *Handler) logIn(c *gin.Context) {
	var input logInRequest
	if ok := h.bindFormOrFail(c, &input); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		failSoft(c, "User not found")
		return
	case errors.Is(err, service.ErrWrongPassword):
		failSoft(c, "Wrong password")
		return
	case err != nil:
		h.serverError(c, "log_in_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "token": token})
}
