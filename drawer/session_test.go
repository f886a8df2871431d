package drawer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nameRequired() Validator {
	return ValidateFunc(func(values Values) map[string]string {
		if name, _ := values["name"].(string); name == "" {
			return map[string]string{"name": "name is required"}
		}
		return nil
	})
}

func must(t *testing.T) func(Session, bool) Session {
	return func(ssn Session, ok bool) Session {
		t.Helper()

		require.True(t, ok)
		return ssn
	}
}

func TestDirtyAndReset(t *testing.T) {

	ssn := NewSession(nil, true).Open(Edit, Values{"name": "A"})
	assert.Equal(t, OpenClean, ssn.State())
	assert.False(t, ssn.IsDirty())

	ssn = must(t)(ssn.Set("name", "B"))
	assert.True(t, ssn.IsDirty())
	assert.Equal(t, OpenDirty, ssn.State())

	ssn = must(t)(ssn.Reset())
	assert.Equal(t, "A", ssn.Value("name"))
	assert.False(t, ssn.IsDirty())
	assert.Equal(t, OpenClean, ssn.State())

	ssn = must(t)(ssn.Set("name", "B"))
	ssn = must(t)(ssn.RequestClose())
	assert.Equal(t, ClosingConfirm, ssn.State())

	ssn = must(t)(ssn.ConfirmDiscard())
	assert.Equal(t, Closed, ssn.State())
}

func TestDirtyIsComparedNotTracked(t *testing.T) {

	ssn := NewSession(nil, true).Open(Create, Values{"name": "", "status": true})

	ssn = must(t)(ssn.Set("name", "x"))
	assert.Equal(t, OpenDirty, ssn.State())

	ssn = must(t)(ssn.Set("name", ""))
	assert.Equal(t, OpenClean, ssn.State(), "typing back the baseline is clean")

	ssn = must(t)(ssn.Set("extra", nil))
	assert.False(t, ssn.IsDirty())

	ssn = must(t)(ssn.Set("status", false))
	assert.True(t, ssn.IsDirty())
}

func TestClose(t *testing.T) {

	t.Run("clean closes without confirm", func(t *testing.T) {
		ssn := NewSession(nil, true).Open(Create, Values{"name": ""})
		ssn = must(t)(ssn.RequestClose())
		assert.Equal(t, Closed, ssn.State())
	})

	t.Run("dirty without warning closes", func(t *testing.T) {
		ssn := NewSession(nil, false).Open(Create, Values{"name": ""})
		ssn = must(t)(ssn.Set("name", "x"))
		ssn = must(t)(ssn.RequestClose())
		assert.Equal(t, Closed, ssn.State())
	})

	t.Run("cancel returns to dirty", func(t *testing.T) {
		ssn := NewSession(nil, true).Open(Create, Values{"name": ""})
		ssn = must(t)(ssn.Set("name", "x"))
		ssn = must(t)(ssn.RequestClose())
		ssn = must(t)(ssn.CancelClose())
		assert.Equal(t, OpenDirty, ssn.State())
		assert.Equal(t, "x", ssn.Value("name"))
	})

	t.Run("closed session is discarded", func(t *testing.T) {
		ssn := NewSession(nil, true).Open(Edit, Values{"name": "A"})
		ssn = must(t)(ssn.RequestClose())
		assert.Nil(t, ssn.Value("name"))
		assert.Equal(t, Create, ssn.Mode())
	})
}

func TestSubmit(t *testing.T) {

	t.Run("blocked by errors", func(t *testing.T) {
		ssn := NewSession(nameRequired(), true).Open(Create, Values{"name": ""})

		ssn, ok := ssn.Submit()
		assert.False(t, ok)
		assert.Equal(t, OpenClean, ssn.State())
		assert.Equal(t, "name is required", ssn.Error("name"))

		ssn = must(t)(ssn.Set("name", "Depo"))
		assert.False(t, ssn.HasErrors(), "errors follow edits after a failed submit")

		ssn = must(t)(ssn.Submit())
		assert.True(t, ssn.IsSubmitting())
	})

	t.Run("success closes", func(t *testing.T) {
		ssn := NewSession(nil, true).Open(Create, Values{"name": ""})
		ssn = must(t)(ssn.Set("name", "Depo"))
		ssn = must(t)(ssn.Submit())
		ssn = must(t)(ssn.SubmitSucceeded())
		assert.Equal(t, Closed, ssn.State())
	})

	t.Run("failure keeps values and prior state", func(t *testing.T) {
		ssn := NewSession(nil, true).Open(Edit, Values{"name": "A"})
		ssn = must(t)(ssn.Set("name", "B"))
		ssn = must(t)(ssn.Submit())

		_, ok := ssn.Set("name", "C")
		assert.False(t, ok, "no edits while submitting")
		_, ok = ssn.RequestClose()
		assert.False(t, ok, "no close while submitting")

		ssn = must(t)(ssn.SubmitFailed(errors.New("boom")))
		assert.Equal(t, OpenDirty, ssn.State())
		assert.Equal(t, "B", ssn.Value("name"))
		assert.EqualError(t, ssn.Failure(), "boom")
	})

	t.Run("clean submit returns clean", func(t *testing.T) {
		ssn := NewSession(nil, true).Open(Edit, Values{"name": "A"})
		ssn = must(t)(ssn.Submit())
		ssn = must(t)(ssn.SubmitFailed(errors.New("boom")))
		assert.Equal(t, OpenClean, ssn.State())
	})
}

func TestIgnoredTransitions(t *testing.T) {

	ssn := NewSession(nil, true)

	for _, fn := range []func(Session) (Session, bool){
		Session.Submit,
		Session.SubmitSucceeded,
		Session.RequestClose,
		Session.ConfirmDiscard,
		Session.CancelClose,
		Session.Reset,
		func(s Session) (Session, bool) { return s.SubmitFailed(nil) },
		func(s Session) (Session, bool) { return s.Set("name", "x") },
	} {
		after, ok := fn(ssn)
		assert.False(t, ok)
		assert.Equal(t, Closed, after.State())
	}
}

func TestBaselineIsCopied(t *testing.T) {

	base := Values{"name": "A"}
	ssn := NewSession(nil, true).Open(Edit, base)
	ssn = must(t)(ssn.Set("name", "B"))

	assert.Equal(t, "A", base["name"])
	assert.Equal(t, "closing-confirm", ClosingConfirm.String())
}
