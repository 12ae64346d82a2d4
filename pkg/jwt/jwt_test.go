package jwt

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/xiebiao/bookmarket/pkg/errors"
)

// TestManager_GenerateAndParse 测试签发与解析
func TestManager_GenerateAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Generate("alice", "admin")
	if err != nil {
		t.Fatalf("签发Token失败: %v", err)
	}
	if token.ExpiresIn != 3600 {
		t.Errorf("期望过期时间3600秒，实际%d", token.ExpiresIn)
	}

	claims, err := manager.Parse(token.AccessToken)
	if err != nil {
		t.Fatalf("解析Token失败: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("期望用户名alice，实际%s", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("期望角色admin，实际%s", claims.Role)
	}
}

// TestManager_Parse_Expired 测试过期Token
func TestManager_Parse_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute) // 签发即过期

	token, err := manager.Generate("alice", "customer")
	if err != nil {
		t.Fatalf("签发Token失败: %v", err)
	}

	_, err = manager.Parse(token.AccessToken)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("期望ErrTokenExpired，实际%v", err)
	}
}

// TestManager_Parse_WrongSecret 测试密钥不匹配
func TestManager_Parse_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := manager.Generate("alice", "customer")
	if err != nil {
		t.Fatalf("签发Token失败: %v", err)
	}

	_, err = other.Parse(token.AccessToken)
	if !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}

// TestManager_Parse_Garbage 测试非法Token串
func TestManager_Parse_Garbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Parse("not-a-jwt")
	if !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}
