package vogent

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature confere a assinatura HMAC-SHA256 (hex) do header
// X-Elto-Signature contra o corpo bruto da requisição. Verificar antes de
// qualquer parse de JSON: parsear primeiro abriria brecha de bypass se a
// normalização de whitespace divergir da do assinante.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	// hmac.Equal é comparação em tempo constante
	return hmac.Equal([]byte(signature), []byte(expected))
}
