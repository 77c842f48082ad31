package optional

import (
	"errors"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
)

func TestOption_Get(t *testing.T) {
	t.Parallel()

	type want struct {
		value  int
		ok     bool
		orElse int
		str    string
	}

	tests := []struct {
		name   string
		option Option[int]
		want   want
	}{
		{
			name:   "ゼロ値はNone",
			option: Option[int]{},
			want:   want{value: 0, ok: false, orElse: 7, str: "None"},
		},
		{
			name:   "Noneは値を持たない",
			option: None[int](),
			want:   want{value: 0, ok: false, orElse: 7, str: "None"},
		},
		{
			name:   "Someは値を保持する",
			option: Some(3),
			want:   want{value: 3, ok: true, orElse: 3, str: "Some(3)"},
		},
		{
			name:   "Someはゼロ値も存在として扱う",
			option: Some(0),
			want:   want{value: 0, ok: true, orElse: 0, str: "Some(0)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, ok := tt.option.Get()
			got := want{
				value:  value,
				ok:     ok,
				orElse: tt.option.OrElse(7),
				str:    tt.option.String(),
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(want{})); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
			if tt.option.IsSome() == tt.option.IsNone() {
				t.Errorf("IsSome() = %v, IsNone() = %v", tt.option.IsSome(), tt.option.IsNone())
			}
			if tt.option.IsZero() != !ok {
				t.Errorf("IsZero() = %v, want %v", tt.option.IsZero(), !ok)
			}
		})
	}
}

func TestOption_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Option[[]string]
		want bool
	}{
		{name: "None同士は等しい", a: None[[]string](), b: Option[[]string]{}, want: true},
		{name: "SomeとNoneは等しくない", a: Some([]string{"a"}), b: None[[]string](), want: false},
		{name: "同じ内容のSomeは等しい", a: Some([]string{"a", "b"}), b: Some([]string{"a", "b"}), want: true},
		{name: "異なる内容のSomeは等しくない", a: Some([]string{"a"}), b: Some([]string{"b"}), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOption_JSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Retries Option[uint32] `json:"retries"`
	}

	tests := []struct {
		name string
		in   payload
		json string
	}{
		{
			name: "Noneはnullになる",
			in:   payload{Retries: None[uint32]()},
			json: `{"retries":null}`,
		},
		{
			name: "Someは値そのものになる",
			in:   payload{Retries: Some[uint32](5)},
			json: `{"retries":5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.json, string(data)); diff != "" {
				t.Errorf("marshal diff(-want +got): %s", diff)
			}

			var got payload
			if err := json.Unmarshal([]byte(tt.json), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.in, got); diff != "" {
				t.Errorf("unmarshal diff(-want +got): %s", diff)
			}
		})
	}
}

func TestMissing(t *testing.T) {
	t.Parallel()

	err := Missing("Command", "Executable")

	if !errors.Is(err, ErrMissingField) {
		t.Errorf("errors.Is(%v, ErrMissingField) = false", err)
	}

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("errors.As(%v, *MissingFieldError) = false", err)
	}
	if diff := cmp.Diff(&MissingFieldError{Struct: "Command", Field: "Executable"}, missing); diff != "" {
		t.Errorf("diff(-want +got): %s", diff)
	}
	if diff := cmp.Diff(`Command: required field "Executable" was never set`, err.Error()); diff != "" {
		t.Errorf("message diff(-want +got): %s", diff)
	}
}
