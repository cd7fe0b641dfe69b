// file: internals/features/assessments/evaluation/controller/evaluation_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/ai"
	"kelasku_backend/internals/apperr"
	"kelasku_backend/internals/features/assessments/evaluation/service"
	helper "kelasku_backend/internals/helpers"
	"kelasku_backend/internals/policy"
)

type EvaluationController struct {
	Evaluator *service.Evaluator
}

func NewEvaluationController(db *gorm.DB, aiClient *ai.Client) *EvaluationController {
	return &EvaluationController{
		Evaluator: service.NewEvaluator(db, aiClient, policy.CreatorOnly{}),
	}
}

// 📌 POST /api/assignments/:id/evaluate-all
// Batch run: semua submission assignment ini, sekuensial. Respons memuat
// berapa yang sukses dan daftar yang gagal — kegagalan parsial bukan 5xx.
func (ctrl *EvaluationController) EvaluateAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	res, err := ctrl.Evaluator.EvaluateBatch(c.Context(), assignmentID, userID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "Evaluasi selesai", res)
}

// 📌 POST /api/assignments/:id/submissions/:submissionId/evaluate
// Evaluasi ulang satu submission (mode text-only).
func (ctrl *EvaluationController) EvaluateOne(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	assignmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}
	submissionID, err := uuid.Parse(c.Params("submissionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	res, err := ctrl.Evaluator.EvaluateSingle(c.Context(), assignmentID, submissionID)
	if err != nil {
		return helper.JsonError(c, apperr.HTTPStatus(err), err.Error())
	}

	return helper.JsonOK(c, "Evaluasi selesai", res)
}
