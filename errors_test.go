package gemmbench

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
		wantOp   string
		wantMsg  string
		checkFn  func(error) bool
	}{
		{
			name:     "Usage Error",
			err:      NewUsageError("ParseDims", "expected 3 dimensions, got 1", nil),
			wantKind: ErrKindUsage,
			wantOp:   "ParseDims",
			wantMsg:  "expected 3 dimensions, got 1",
			checkFn:  IsUsageError,
		},
		{
			name:     "Config Error",
			err:      NewConfigError("TileSize", errors.New("must be >= 1, got 0")),
			wantKind: ErrKindConfig,
			wantOp:   "TileSize",
			wantMsg:  "invalid value",
			checkFn:  IsConfigError,
		},
		{
			name: "Check Error",
			err: NewCheckError("gemm_cpu_o2",
				VerifyFloat32Array([]float32{1}, []float32{2}, DefaultTolerance())),
			wantKind: ErrKindCheck,
			wantOp:   "gemm_cpu_o2",
			wantMsg:  "check ref failed",
			checkFn:  IsCheckError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e *Error
			if !errors.As(tt.err, &e) {
				t.Fatalf("Expected *Error, got %T", tt.err)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", e.Message, tt.wantMsg)
			}
			if !tt.checkFn(tt.err) {
				t.Errorf("Check function returned false for %v", tt.err)
			}
			if !tt.checkFn(errors.Wrap(tt.err, "wrapped")) {
				t.Errorf("Check function returned false for wrapped %v", tt.err)
			}
			if !strings.HasPrefix(tt.err.Error(), tt.wantKind.String()+" error in "+tt.wantOp) {
				t.Errorf("Unexpected message %q", tt.err.Error())
			}
		})
	}
}

func TestErrorKindPredicatesDisjoint(t *testing.T) {
	err := NewUsageError("ParseDims", "bad", nil)
	if IsConfigError(err) || IsCheckError(err) {
		t.Errorf("usage error matched another kind")
	}
	if IsUsageError(errors.New("plain")) {
		t.Errorf("plain error matched usage kind")
	}
	if ErrorKind(99).String() != "Unknown" {
		t.Errorf("unexpected name for unknown kind: %s", ErrorKind(99))
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("strconv failure")
	err := NewUsageError("ParseDims", "M is not an integer", cause)
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap did not return the cause")
	}
	if !strings.Contains(err.Error(), cause.Error()) {
		t.Errorf("message %q does not mention the cause", err)
	}
}
