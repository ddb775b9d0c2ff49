package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/xavierca1/ligue-voice/internal/infra/integration/vogent"
)

type InitiateCallInput struct {
	PhoneNumber string `json:"phoneNumber"`
	LeadID      string `json:"leadId"`
	BatchID     string `json:"batchId"`
	ResumeURL   string `json:"resumeUrl"`
}

type InitiateCallOutput struct {
	CallID  string
	LeadID  string
	BatchID string

	// Degraded indica que a Vogent falhou; a resposta ao chamador
	// continua 200 só com os ids de correlação.
	Degraded bool
}

type InitiateCallUseCase struct {
	Dialer VoiceDialer
}

func NewInitiateCallUseCase(dialer VoiceDialer) *InitiateCallUseCase {
	return &InitiateCallUseCase{Dialer: dialer}
}

func (uc *InitiateCallUseCase) Execute(ctx context.Context, input InitiateCallInput) (*InitiateCallOutput, error) {
	if input.PhoneNumber == "" {
		return nil, ErrPhoneRequired
	}

	phone, err := StandardizePhoneNumber(input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	traceID := uuid.New().String()
	log.Printf("===== 📞 INITIATING OUTBOUND CALL [%s] =====", traceID)
	log.Printf("   To: %s", phone)
	log.Printf("   Lead ID: %s", input.LeadID)
	log.Printf("   Batch ID: %s", input.BatchID)

	dial, err := uc.Dialer.CreateDial(ctx, vogent.CreateDialInput{
		ToNumber:  phone,
		LeadID:    input.LeadID,
		BatchID:   input.BatchID,
		ResumeURL: input.ResumeURL,
	})
	if err != nil || dial == nil || dial.ID == "" {
		if err != nil {
			logDialFailure(err)
		} else {
			log.Println("❌ Vogent respondeu sem id do dial")
		}
		log.Printf("===== END CALL INITIATION [%s] =====", traceID)
		return &InitiateCallOutput{
			LeadID:   input.LeadID,
			BatchID:  input.BatchID,
			Degraded: true,
		}, nil
	}

	log.Printf("   Vogent call ID: %s", dial.ID)
	log.Printf("===== END CALL INITIATION [%s] =====", traceID)

	return &InitiateCallOutput{CallID: dial.ID}, nil
}

func logDialFailure(err error) {
	var apiErr *vogent.APIError
	switch {
	case errors.Is(err, vogent.ErrTimeout):
		log.Printf("❌ Timeout ao criar dial na Vogent: %v", err)
	case errors.As(err, &apiErr):
		log.Printf("❌ Vogent retornou status %d: %s", apiErr.StatusCode, apiErr.Body)
	case errors.Is(err, vogent.ErrMalformedBody):
		log.Printf("❌ Resposta da Vogent ilegível: %v", err)
	default:
		log.Printf("❌ Erro de rede ao criar dial na Vogent: %v", err)
	}
}
