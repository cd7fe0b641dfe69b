// file: internals/features/assessments/evaluation/service/prompt.go
package service

import (
	"fmt"

	asgModel "kelasku_backend/internals/features/assessments/assignments/model"
	subModel "kelasku_backend/internals/features/assessments/submissions/model"
)

// Template prompt penilaian. Kontrak output baris pertama "Score: X/100"
// harus persis — parser bergantung ke situ.
const promptTemplate = `Evaluate this student's submission for the assignment "%s".
Primary PDF URL: %s
Student's PDF URL: %s

As an expert evaluator, provide a concise evaluation using these criteria (100 points total):

Content & Understanding (40pts)
Technical Accuracy (30pts)
Presentation (30pts)

Format your response EXACTLY like this:
Score: [X]/100

Content: [X]/40
[One clear sentence about content quality]

Technical: [X]/30
[One clear sentence about technical accuracy]

Presentation: [X]/30
[One clear sentence about presentation]

Key Strength: [One specific strength in 10-15 words]
To Improve: [One specific suggestion in 10-15 words]

Important:
- Keep each feedback point to exactly one clear, specific sentence
- Vary scores based on actual quality (avoid defaulting to 75/100)
- Make feedback actionable and specific to the submission
- Ensure feedback tone is constructive and professional`

// BuildPrompt deterministik terhadap input yang sama.
func BuildPrompt(asg *asgModel.AssignmentModel, sub *subModel.SubmissionModel) string {
	return fmt.Sprintf(promptTemplate,
		asg.AssignmentTitle,
		asg.AssignmentPrimaryPDFURL,
		sub.SubmissionPDFURL,
	)
}
