package httperror_test

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jmgilman/go/httperror"
	"github.com/stretchr/testify/require"
)

func TestEdgeCase_UnicodeMessages(t *testing.T) {
	messages := []string{
		"错误信息",                // Chinese
		"エラーメッセージ",            // Japanese
		"сообщение об ошибке", // Russian
		"mensaje de error",    // Spanish with accents
		"🚨 error occurred 🔥",  // Emojis
	}

	for _, msg := range messages {
		err := httperror.FromPreset(httperror.PresetBadRequest, httperror.WithMessage(msg))
		require.Equal(t, msg, err.Message())
		require.Contains(t, err.Error(), msg)

		jsonBytes, marshalErr := json.Marshal(err)
		require.NoError(t, marshalErr)

		var decoded httperror.ErrorJSON
		require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
		require.Equal(t, msg, decoded.Message)
	}
}

func TestEdgeCase_SpecialCharactersJSON(t *testing.T) {
	specialChars := `"quotes" 'apostrophes' \backslash newline\n tab\t <html>`
	err := httperror.FromPreset(httperror.PresetBadRequest).
		SetMessage(specialChars).
		AddDetail(specialChars, specialChars)

	jsonBytes, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded httperror.ErrorJSON
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	require.Equal(t, specialChars, decoded.Message)
	require.Equal(t, specialChars, decoded.Details[0].Param)
	require.Equal(t, specialChars, decoded.Details[0].Message)
}

func TestEdgeCase_VeryLongMessage(t *testing.T) {
	longMessage := strings.Repeat("a", 10000)
	err := httperror.New("CUSTOM", "LONG", httperror.StatusBadRequest, httperror.WithMessage(longMessage))

	require.Equal(t, longMessage, err.Message())
	require.Equal(t, longMessage, err.ToJSON(false).Message)
}

func TestEdgeCase_ManyDetails(t *testing.T) {
	err := httperror.FromPreset(httperror.PresetUnprocessableEntity)
	for i := 0; i < 1000; i++ {
		err.AddDetail(fmt.Sprintf("field_%d", i), i)
	}

	details := err.Details()
	require.Len(t, details, 1000)
	for i, d := range details {
		require.Equal(t, fmt.Sprintf("field_%d", i), d.Param)
		require.Equal(t, i, d.Message)
	}
}

func TestEdgeCase_DetailValueTypes(t *testing.T) {
	err := httperror.FromPreset(httperror.PresetBadRequest).AddDetails([]httperror.Detail{
		{Param: "string", Message: "value"},
		{Param: "int", Message: 42},
		{Param: "float", Message: 3.14},
		{Param: "bool", Message: true},
		{Param: "nil", Message: nil},
		{Param: "slice", Message: []int{1, 2, 3}},
		{Param: "map", Message: map[string]string{"nested": "value"}},
	})

	jsonBytes, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	require.Contains(t, string(jsonBytes), `{"param":"map","message":{"nested":"value"}}`)
	require.Contains(t, string(jsonBytes), `{"param":"nil","message":null}`)
}

func TestEdgeCase_NilOperations(t *testing.T) {
	require.Nil(t, httperror.Wrap(nil, httperror.PresetInternalServerError))
	require.Nil(t, httperror.ToJSON(nil, false))

	require.Equal(t, httperror.StatusInternalServerError, httperror.GetStatus(nil))
	require.Equal(t, "INTERNAL_SERVER_ERROR", httperror.GetCode(nil))
	require.Equal(t, httperror.SeverityError, httperror.GetSeverity(nil))
}

func TestEdgeCase_TypedNilHTTPError(t *testing.T) {
	var herr *httperror.HTTPError
	var err error = herr

	require.NotPanics(t, func() {
		require.Equal(t, httperror.StatusInternalServerError, httperror.GetStatus(err))
		require.Equal(t, "INTERNAL_SERVER_ERROR", httperror.GetCode(err))
		require.Equal(t, "SERVER", httperror.GetType(err))
		require.Equal(t, httperror.SeverityError, httperror.GetSeverity(err))
		require.Nil(t, httperror.ToJSON(err, true))
	})

	wrapped := fmt.Errorf("handler: %w", err)
	require.NotPanics(t, func() {
		require.Equal(t, httperror.StatusInternalServerError, httperror.GetStatus(wrapped))
		require.Equal(t, "INTERNAL_SERVER_ERROR", httperror.ToJSON(wrapped, false).Code)
	})

	// A nil-safe mutator chain hands back nil; reading it must not panic.
	chained := herr.AddDetail("email", "required").SetMessage("x")
	require.NotPanics(t, func() {
		require.Zero(t, chained.StatusCode())
		require.Empty(t, chained.Type())
		require.Empty(t, chained.Code())
		require.Empty(t, chained.Severity())
		require.Empty(t, chained.Message())
		require.Empty(t, chained.Details())
		require.Empty(t, chained.Stack())
		require.Nil(t, chained.ToJSON(true))

		_, ok := chained.Cause()
		require.False(t, ok)
		_, ok = chained.CauseJSON()
		require.False(t, ok)

		data, marshalErr := json.Marshal(chained)
		require.NoError(t, marshalErr)
		require.Equal(t, "null", string(data))
	})
}

func TestEdgeCase_StandardErrorTypes(t *testing.T) {
	stdErrors := []error{
		stderrors.New("simple error"),
		fmt.Errorf("formatted error: %s", "detail"),
		fmt.Errorf("wrapped: %w", stderrors.New("cause")),
	}

	for i, stdErr := range stdErrors {
		t.Run(fmt.Sprintf("error_%d", i), func(t *testing.T) {
			wrapped := httperror.Wrap(stdErr, httperror.PresetInternalServerError)
			require.Equal(t, stdErr, stderrors.Unwrap(wrapped))
			require.Contains(t, wrapped.Error(), stdErr.Error())
		})
	}
}

func TestEdgeCase_SelfReferencingCause(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	err := httperror.FromPreset(httperror.PresetInternalServerError, httperror.WithCause(cyclic))

	var resp *httperror.ErrorJSON
	require.NotPanics(t, func() {
		resp = err.ToJSON(true)
	})
	require.NotEmpty(t, resp.TraceJSON)

	// The client view never carries the cause.
	_, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
}

func TestEdgeCase_CauseIsSelf(t *testing.T) {
	err := httperror.FromPreset(httperror.PresetInternalServerError)
	err.AttachCause(err)

	require.Equal(t, "[INTERNAL_SERVER_ERROR] An unexpected error occurred on the server.", err.Error())
	require.NoError(t, err.Unwrap())
	require.False(t, stderrors.Is(err, stderrors.New("other")))

	cause, ok := err.Cause()
	require.True(t, ok)
	require.Same(t, err, cause)

	rendered, ok := err.CauseJSON()
	require.True(t, ok)
	require.Contains(t, rendered, "INTERNAL_SERVER_ERROR")

	require.Contains(t, fmt.Sprintf("%+v", err), "TestEdgeCase_CauseIsSelf")
}

func TestEdgeCase_MutuallyAttachedErrors(t *testing.T) {
	first := httperror.FromPreset(httperror.PresetNotFound)
	second := httperror.FromPreset(httperror.PresetConflict, httperror.WithCause(first))
	first.AttachCause(fmt.Errorf("lookup: %w", second))

	require.Equal(t, "[NOT_FOUND] The requested resource could not be found.", first.Error())
	require.NoError(t, first.Unwrap())
	require.Equal(t,
		"[CONFLICT] The request could not be completed due to a conflict with the current state of the resource."+
			": [NOT_FOUND] The requested resource could not be found.",
		second.Error(),
	)

	require.True(t, stderrors.Is(second, first))
	require.False(t, stderrors.Is(first, stderrors.New("other")))

	_, marshalErr := json.Marshal(second.ToJSON(false))
	require.NoError(t, marshalErr)
}

func TestEdgeCase_CauseJoinedWithSelf(t *testing.T) {
	err := httperror.FromPreset(httperror.PresetGatewayTimeout)
	other := stderrors.New("upstream reset")
	err.AttachCause(stderrors.Join(other, err))

	require.NoError(t, err.Unwrap())
	require.NotContains(t, err.Error(), "upstream reset")
}
