package configs_test

import (
	"encoding/base64"
	"testing"

	"dugun.link/configs"
)

func TestCookieEncryptionKey(t *testing.T) {
	key := configs.CookieEncryptionKey("cok-gizli-bir-sir")

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("anahtar geçerli base64 olmalı: %v", err)
	}
	// encryptcookie AES-256 için 32 baytlık anahtar bekler.
	if len(raw) != 32 {
		t.Errorf("anahtar 32 bayt olmalı, %d bayt üretildi", len(raw))
	}

	// Aynı sır her zaman aynı anahtarı üretir; farklı sır farklı anahtar.
	if key != configs.CookieEncryptionKey("cok-gizli-bir-sir") {
		t.Error("anahtar türetimi deterministik olmalı")
	}
	if key == configs.CookieEncryptionKey("baska-bir-sir") {
		t.Error("farklı sırlar aynı anahtarı üretmemeli")
	}
}
