package usecase

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  error
	}{
		{in: "11987654321", want: "+55 11 98765-4321"},
		{in: "(11) 98765-4321", want: "+55 11 98765-4321"},
		{in: "+55 11 98765-4321", want: "+55 11 98765-4321"},
		{in: "5511987654321", want: "+55 11 98765-4321"},
		{in: "1132654321", want: "+55 11 3265-4321"},
		{in: "551132654321", want: "+55 11 3265-4321"},
		{in: "55987654321", want: "+55 55 98765-4321"},
		{in: "98765-4321", err: ErrInvalidClientPhone},
		{in: "", err: ErrInvalidClientPhone},
		{in: "441132654321", err: ErrInvalidClientPhone},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
