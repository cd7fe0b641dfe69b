// file: internals/policy/policy.go
package policy

import "github.com/google/uuid"

type Action string

const (
	ActionUpdateAssignment Action = "assignment:update"
	ActionViewSubmissions  Action = "assignment:view_submissions"
	ActionGradeSubmission  Action = "submission:grade"
	ActionEvaluate         Action = "assignment:evaluate"
)

// Policy memutuskan apakah caller boleh melakukan action terhadap resource
// yang dimiliki ownerID. Call site tidak membandingkan ID secara langsung
// supaya aturan role tambahan (mis. secondary admin ikut menilai) bisa
// dipasang tanpa menyentuh controller/service.
type Policy interface {
	Can(action Action, ownerID, callerID uuid.UUID) bool
}

// CreatorOnly: hanya pembuat resource yang boleh.
type CreatorOnly struct{}

func (CreatorOnly) Can(_ Action, ownerID, callerID uuid.UUID) bool {
	return ownerID != uuid.Nil && ownerID == callerID
}
