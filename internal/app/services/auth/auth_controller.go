package auth

import (
	"context"
	"net/http"
	"time"

	"dentaldesk-service/internal/app/config"
	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/dto/requests"
	"dentaldesk-service/internal/pkg/exceptions"
	"dentaldesk-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthUsecase    AuthUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (ctrl *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SignUp)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.SignUp(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, response)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    response.SessionID,
		Path:     "/",
		MaxAge:   ctrl.InternalConfig.Session.TTLInSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.clearSessionCookie(w)
	utils.BuildNoContentResponse(w)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.CurrentUser(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *AuthController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AuthUsecase.DeleteAccount(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.clearSessionCookie(w)
	utils.BuildNoContentResponse(w)
}

func (ctrl *AuthController) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
