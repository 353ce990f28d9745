package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveTitle_PredefinedSelections(t *testing.T) {
	for _, title := range PredefinedTitles {
		if title == OtherTitle {
			continue
		}

		sel := JobSelection{PredefinedTitle: title, CustomTitle: "ignored"}
		assert.Equal(t, title, sel.EffectiveTitle())
	}
}

func TestEffectiveTitle_OtherUsesTrimmedCustomText(t *testing.T) {
	sel := JobSelection{PredefinedTitle: OtherTitle, CustomTitle: "  Platform Engineer  "}
	assert.Equal(t, "Platform Engineer", sel.EffectiveTitle())
}

func TestEffectiveTitle_OtherWithEmptyCustomTextIsEmpty(t *testing.T) {
	assert.Empty(t, JobSelection{PredefinedTitle: OtherTitle}.EffectiveTitle())
	assert.Empty(t, JobSelection{PredefinedTitle: OtherTitle, CustomTitle: "   "}.EffectiveTitle())
}

func TestIsPredefinedTitle(t *testing.T) {
	assert.True(t, IsPredefinedTitle("Frontend Developer"))
	assert.True(t, IsPredefinedTitle(OtherTitle))
	assert.False(t, IsPredefinedTitle("Astronaut"))
	assert.False(t, IsPredefinedTitle(""))
}

func TestUserMessage_EveryKindHasExactlyOneMessage(t *testing.T) {
	kinds := []FailureKind{
		FailureUnsupportedFormat,
		FailureNoReadableText,
		FailurePasswordProtected,
		FailureCorruptOrUnreadable,
		FailureService,
		FailureParse,
		FailureValidation,
	}

	seen := make(map[string]FailureKind)
	for _, kind := range kinds {
		msg := kind.UserMessage()
		assert.NotEmpty(t, msg, "kind %s has no message", kind)
		if prev, dup := seen[msg]; dup {
			t.Errorf("kinds %s and %s share the message %q", prev, kind, msg)
		}
		seen[msg] = kind
	}
}

func TestUserMessage_UnknownKindFallsBack(t *testing.T) {
	assert.NotEmpty(t, FailureKind("nonsense").UserMessage())
}
