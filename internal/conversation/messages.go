package conversation

import (
	"fmt"
	"strconv"

	"quiethelp/internal/catalog"
	"quiethelp/internal/domain"
)

const (
	msgSelectProgram  = "Select your major:"
	msgSelectSemester = "Select your current semester:"
	msgChooseClass    = "Choose the class this question is for:"
	msgRegisterFirst  = "Please use /start first to register your major and semester."
	msgNoClasses      = "No classes found for your selection. Contact admin to update class list."
	msgSent           = "✅ Your question was sent anonymously!"
	msgSendFailed     = "❌ Your question could not be sent. Please try again with /ask."
	msgSaveFailed     = "❌ Could not save your major and semester. Please try again with /start."
	msgTryLater       = "Something went wrong. Please try again later."
)

// offTopicPayload cannot collide with a class index
const offTopicPayload = "offtopic"

func profileSummary(p *domain.UserProfile) string {
	return fmt.Sprintf("📚 Your info:\nMajor: %s\nSemester: %s", p.Program, p.Semester)
}

func programChoices() []Choice {
	programs := catalog.Programs()
	choices := make([]Choice, 0, len(programs))
	for i, program := range programs {
		choices = append(choices, Choice{Label: program, Trigger: TriggerProgram, Payload: strconv.Itoa(i)})
	}
	return choices
}

func semesterChoices() []Choice {
	semesters := catalog.Semesters()
	choices := make([]Choice, 0, len(semesters))
	for _, s := range semesters {
		choices = append(choices, Choice{Label: "Semester " + s, Trigger: TriggerSemester, Payload: s})
	}
	return choices
}

func classChoices(classes []string) []Choice {
	choices := make([]Choice, 0, len(classes)+1)
	for i, class := range classes {
		choices = append(choices, Choice{Label: class, Trigger: TriggerClass, Payload: strconv.Itoa(i)})
	}
	return append(choices, Choice{Label: domain.OffTopicLabel, Trigger: TriggerClass, Payload: offTopicPayload})
}

// programFromPayload resolves a program button payload
func programFromPayload(payload string) (string, bool) {
	programs := catalog.Programs()
	i, err := strconv.Atoi(payload)
	if err != nil || i < 0 || i >= len(programs) {
		return "", false
	}
	return programs[i], true
}

// hashtagFromPayload resolves a class button payload against the classes
// that were offered to the user
func hashtagFromPayload(payload string, offered []string) (string, bool) {
	if payload == offTopicPayload {
		return domain.OffTopicHashtag, true
	}
	i, err := strconv.Atoi(payload)
	if err != nil || i < 0 || i >= len(offered) {
		return "", false
	}
	return domain.ClassHashtag(offered[i]), true
}
