package coursechat_test

import (
	"testing"

	"github.com/mrunalid-blip/coursechat"
	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		question  string
		intent    coursechat.Intent
		specialty string
	}{
		{"list all courses", "list all courses", coursechat.IntentListAll, ""},
		{"show courses", "can you show courses?", coursechat.IntentListAll, ""},
		{"available courses", "what are the available courses", coursechat.IntentListAll, ""},
		{"fee question", "what is the fee for cardiology", coursechat.IntentFeesOrDuration, ""},
		{"cost question", "how much does it cost", coursechat.IntentFeesOrDuration, ""},
		{"duration question", "what is the duration of the diploma", coursechat.IntentFeesOrDuration, ""},
		{"specialty with preposition", "do you have courses in cardiology", coursechat.IntentListBySpecialty, "cardiology"},
		{"specialty prefix", "tell me about pediatric courses", coursechat.IntentListBySpecialty, "pediatric"},
		{"stopword prefix is not a specialty", "do you offer some courses", coursechat.IntentGeneralDetails, ""},
		{"general question", "tell me about the cardiology diploma", coursechat.IntentGeneralDetails, ""},
		{"feel does not mean fee", "I feel this is interesting", coursechat.IntentGeneralDetails, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cl := coursechat.ClassifyIntent(tt.question)

			assert.Equal(t, tt.intent, cl.Intent)
			assert.Equal(t, tt.specialty, cl.Specialty)
		})
	}
}

func TestClassifyIntent_ListAllWinsOverFees(t *testing.T) {
	t.Parallel()

	cl := coursechat.ClassifyIntent("list all courses with their fees")

	assert.Equal(t, coursechat.IntentListAll, cl.Intent)
}
