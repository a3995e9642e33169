package pkg

import (
	"errors"
	"testing"
)

func TestGenerateAndParse(t *testing.T) {
	pair, err := GeneratePair(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token pair")
	}

	claims, err := ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user_id = %d, want 42", claims.UserID)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := ParseAccess("not-a-token"); err == nil {
		t.Fatal("want error for garbage token")
	}
	// refresh token不能当access用
	pair, _ := GeneratePair(1)
	if _, err := ParseAccess(pair.RefreshToken); err == nil {
		t.Fatal("want error for refresh token on access path")
	}
}

func TestRefresh(t *testing.T) {
	pair, _ := GeneratePair(7)

	next, err := Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := ParseAccess(next.AccessToken)
	if err != nil || claims.UserID != 7 {
		t.Fatalf("claims = %+v err=%v", claims, err)
	}

	if _, err := Refresh(pair.AccessToken); err == nil {
		t.Fatal("want error for access token on refresh path")
	}
}

func TestAppError(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
	}{
		{name: "validation", err: Validation("x"), code: CodeValidation},
		{name: "unauthorized", err: Unauthorized("x"), code: CodeUnauthorized},
		{name: "forbidden", err: Forbidden("x"), code: CodeForbidden},
		{name: "not found", err: NotFoundErr("x"), code: CodeNotFound},
		{name: "conflict", err: Conflict("x"), code: CodeConflict},
		{name: "store", err: Store("x"), code: CodeStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae, ok := AsAppError(tt.err)
			if !ok || ae.Code != tt.code {
				t.Fatalf("AsAppError = %+v ok=%v", ae, ok)
			}
		})
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Fatal("plain error matched AppError")
	}
}

func TestRandDigits(t *testing.T) {
	code, err := RandDigits(6)
	if err != nil {
		t.Fatalf("rand: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("len = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit %q in %q", r, code)
		}
	}
}
