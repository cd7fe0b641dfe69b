// file: internals/features/assessments/evaluation/service/evaluator.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kelasku_backend/internals/ai"
	"kelasku_backend/internals/apperr"
	asgModel "kelasku_backend/internals/features/assessments/assignments/model"
	subModel "kelasku_backend/internals/features/assessments/submissions/model"
	"kelasku_backend/internals/policy"
)

// Evaluator: mesin penilaian AI. Client AI di-inject dari bootstrap,
// bukan global package.
type Evaluator struct {
	DB     *gorm.DB
	AI     *ai.Client
	Policy policy.Policy
	Fetch  FetchFunc
}

func NewEvaluator(db *gorm.DB, aiClient *ai.Client, pol policy.Policy) *Evaluator {
	if pol == nil {
		pol = policy.CreatorOnly{}
	}
	return &Evaluator{DB: db, AI: aiClient, Policy: pol, Fetch: FetchDocument}
}

// Result: hasil sukses untuk satu submission.
type Result struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Score        int       `json:"score"`
	Feedback     string    `json:"feedback"`
}

// Failure: satu submission yang gagal dievaluasi di batch run ini.
type Failure struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Reason       string    `json:"reason"`
}

// BatchResult: akumulator eksplisit satu run evaluate-all.
type BatchResult struct {
	EvaluatedCount int       `json:"evaluated_count"`
	Evaluations    []Result  `json:"evaluations"`
	Failures       []Failure `json:"failures,omitempty"`
}

// EvaluateSingle menilai satu submission dengan mode text-only.
// Error API diteruskan ke caller; respons yang formatnya menyimpang tidak
// dianggap error — parser jatuh ke skor default.
func (e *Evaluator) EvaluateSingle(ctx context.Context, assignmentID, submissionID uuid.UUID) (*Result, error) {
	asg, err := e.loadAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	var sub subModel.SubmissionModel
	if err := e.DB.WithContext(ctx).
		First(&sub, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Submission")
		}
		return nil, err
	}

	text, err := e.AI.GenerateText(ctx, BuildPrompt(asg, &sub))
	if err != nil {
		return nil, apperr.Upstream(apperr.ErrAPI, err)
	}

	return e.persistEvaluation(ctx, &sub, ParseEvaluation(text))
}

// EvaluateBatch menilai seluruh submission satu assignment secara sekuensial:
// fetch PDF → panggil model multimodal → parse → persist, satu per satu
// (satu PDF termaterialisasi pada satu waktu).
//
// Kontrak resiliensi: kegagalan satu submission (fetch/API/parse) dicatat,
// dihitung sebagai failure, dan loop lanjut. Fatal hanya untuk pelanggaran
// precondition (assignment tidak ada, bukan pembuat) atau API key invalid.
// Apapun jumlah kegagalannya, is_evaluated tetap di-set true di akhir run.
func (e *Evaluator) EvaluateBatch(ctx context.Context, assignmentID, caller uuid.UUID) (*BatchResult, error) {
	asg, err := e.loadAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if !e.Policy.Can(policy.ActionEvaluate, asg.AssignmentCreatedBy, caller) {
		return nil, apperr.Forbidden("Not authorized to evaluate submissions")
	}
	if !e.AI.Ready() {
		return nil, apperr.ErrAPIKeyMissing
	}

	var subs []subModel.SubmissionModel
	if err := e.DB.WithContext(ctx).
		Where("submission_assignment_id = ?", assignmentID).
		Order("submission_submitted_at ASC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	log.Printf("[INFO] evaluate-all %s: %d submissions", assignmentID, len(subs))

	res := &BatchResult{}
	for i := range subs {
		sub := &subs[i]

		result, err := e.evaluateOne(ctx, asg, sub)
		if err != nil {
			var apiErr *ai.APIError
			if errors.As(err, &apiErr) && apiErr.InvalidKey() {
				// salah konfigurasi kredensial — lanjut terus tidak ada gunanya
				return nil, apperr.Upstream(apperr.ErrAPIKeyMissing, apiErr)
			}
			log.Printf("[ERROR] evaluasi submission %s gagal: %v", sub.SubmissionID, err)
			res.Failures = append(res.Failures, Failure{SubmissionID: sub.SubmissionID, Reason: err.Error()})
			continue
		}
		res.Evaluations = append(res.Evaluations, *result)
	}
	res.EvaluatedCount = len(res.Evaluations)

	// selesai satu run penuh → tandai assignment sudah dievaluasi
	if err := e.DB.WithContext(ctx).
		Model(&asgModel.AssignmentModel{}).
		Where("assignment_id = ?", assignmentID).
		Update("assignment_is_evaluated", true).Error; err != nil {
		return nil, err
	}

	return res, nil
}

func (e *Evaluator) evaluateOne(ctx context.Context, asg *asgModel.AssignmentModel, sub *subModel.SubmissionModel) (*Result, error) {
	pdf, err := e.Fetch(ctx, sub.SubmissionPDFURL)
	if err != nil {
		return nil, err
	}

	text, err := e.AI.GenerateWithPDF(ctx, BuildPrompt(asg, sub), pdf)
	if err != nil {
		return nil, err
	}

	return e.persistEvaluation(ctx, sub, ParseEvaluation(text))
}

func (e *Evaluator) persistEvaluation(ctx context.Context, sub *subModel.SubmissionModel, ev Evaluation) (*Result, error) {
	if ev.Fallback {
		log.Printf("[WARN] respons model tidak sesuai kontrak untuk submission %s, pakai skor default %d", sub.SubmissionID, ev.Score)
	}

	updates := map[string]any{
		"submission_score":    ev.Score,
		"submission_feedback": ev.Feedback,
	}
	if len(ev.Sections) > 0 {
		updates["submission_scores"] = datatypes.JSONMap(ev.Sections)
	}
	if err := e.DB.WithContext(ctx).Model(sub).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &Result{
		SubmissionID: sub.SubmissionID,
		Score:        ev.Score,
		Feedback:     ev.Feedback,
	}, nil
}

func (e *Evaluator) loadAssignment(ctx context.Context, id uuid.UUID) (*asgModel.AssignmentModel, error) {
	var asg asgModel.AssignmentModel
	if err := e.DB.WithContext(ctx).
		First(&asg, "assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Assignment")
		}
		return nil, err
	}
	return &asg, nil
}
