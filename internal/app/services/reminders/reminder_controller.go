package reminders

import (
	"context"
	"net/http"
	"time"

	"dentaldesk-service/internal/pkg/constvars"
	"dentaldesk-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReminderController struct {
	ReminderUsecase ReminderUsecase
	Log             *zap.Logger
}

func NewReminderController(reminderUsecase ReminderUsecase, logger *zap.Logger) *ReminderController {
	return &ReminderController{
		ReminderUsecase: reminderUsecase,
		Log:             logger,
	}
}

func (ctrl *ReminderController) Upcoming(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(int)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ReminderUsecase.UpcomingForUser(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}
