package vogent

type CreateDialInput struct {
	ToNumber  string
	LeadID    string
	BatchID   string
	ResumeURL string
}

type CreateDialOutput struct {
	ID string `json:"id"`
}

// Corpo do POST /api/dials. callAgentInput e metadata só entram quando
// há pelo menos um id de correlação.
type createDialRequest struct {
	CallAgentID    string          `json:"callAgentId"`
	AIVoiceID      string          `json:"aiVoiceId"`
	ToNumber       string          `json:"toNumber"`
	FromNumberID   string          `json:"fromNumberId"`
	BrowserCall    bool            `json:"browserCall"`
	TimeoutMinutes int             `json:"timeoutMinutes"`
	CallAgentInput *callAgentInput `json:"callAgentInput,omitempty"`
	Metadata       *dialMetadata   `json:"metadata,omitempty"`
}

type callAgentInput struct {
	LeadID    string `json:"leadId,omitempty"`
	BatchID   string `json:"batchId,omitempty"`
	ResumeURL string `json:"resumeUrl,omitempty"`
}

type dialMetadata struct {
	LeadID  string `json:"leadId,omitempty"`
	BatchID string `json:"batchId,omitempty"`
}
