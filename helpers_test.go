package httperror

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantType     string
		wantSeverity Severity
	}{
		{
			name:         "nil",
			err:          nil,
			wantStatus:   StatusInternalServerError,
			wantCode:     "INTERNAL_SERVER_ERROR",
			wantType:     "SERVER",
			wantSeverity: SeverityError,
		},
		{
			name:         "standard error",
			err:          stderrors.New("boom"),
			wantStatus:   StatusInternalServerError,
			wantCode:     "INTERNAL_SERVER_ERROR",
			wantType:     "SERVER",
			wantSeverity: SeverityError,
		},
		{
			name:         "http error",
			err:          FromPreset(PresetUnauthorized, WithSeverity(SeverityInfo)),
			wantStatus:   StatusUnauthorized,
			wantCode:     "UNAUTHORIZED",
			wantType:     "AUTHORIZATION",
			wantSeverity: SeverityInfo,
		},
		{
			name:         "wrapped http error",
			err:          fmt.Errorf("middleware: %w", FromPreset(PresetTooManyRequests)),
			wantStatus:   StatusTooManyRequests,
			wantCode:     "TOO_MANY_REQUESTS",
			wantType:     "CLIENT",
			wantSeverity: SeverityError,
		},
		{
			name:         "outermost http error wins",
			err:          Wrap(FromPreset(PresetNotFound), PresetBadRequest, WithSeverity(SeverityWarn)),
			wantStatus:   StatusBadRequest,
			wantCode:     "BAD_REQUEST",
			wantType:     "CLIENT",
			wantSeverity: SeverityWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantStatus, GetStatus(tt.err))
			require.Equal(t, tt.wantCode, GetCode(tt.err))
			require.Equal(t, tt.wantType, GetType(tt.err))
			require.Equal(t, tt.wantSeverity, GetSeverity(tt.err))
		})
	}
}

func TestIsAs(t *testing.T) {
	cause := stderrors.New("no rows")
	err := fmt.Errorf("repo: %w", Wrap(cause, PresetNotFound))

	require.True(t, Is(err, cause))

	var serr SerializableError
	require.True(t, As(err, &serr))
	require.Equal(t, "NOT_FOUND", serr.Code())
}
