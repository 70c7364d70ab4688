package audit

import "fmt"

// RegisterEvent represents an account registration audit event
type RegisterEvent struct {
	Email        string
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e RegisterEvent) MessageID() string {
	return "register"
}

func (e RegisterEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s registered as %s", e.Email, e.UserID)
	}
	msg := fmt.Sprintf("%s failed to register", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RegisterEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RegisterEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RegisterEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "register",
			"result":    result,
		},
	}
	if e.UserID != "" {
		sd[SDIDAuth]["user"] = e.UserID
	}
	return sd
}

// AuthenticateEvent represents a login audit event
type AuthenticateEvent struct {
	Email        string
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", e.Email)
	}
	msg := fmt.Sprintf("%s failed to authenticate", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "login",
			"result":    result,
		},
	}
	if e.UserID != "" {
		sd[SDIDAuth]["user"] = e.UserID
	}
	return sd
}

// PasswordEvent represents a password change audit event
type PasswordEvent struct {
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e PasswordEvent) MessageID() string {
	return "password"
}

func (e PasswordEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully changed their password", e.UserID)
	}
	msg := fmt.Sprintf("%s failed to change their password", e.UserID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PasswordEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PasswordEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PasswordEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "change-password",
			"result":    result,
		},
	}
}

// NoteEvent represents a note mutation audit event
type NoteEvent struct {
	UserID       string
	ClientIP     string
	NoteID       int64
	Operation    string // "create", "update", "delete"
	Success      bool
	ErrorMessage string
}

func (e NoteEvent) MessageID() string {
	return "note"
}

func (e NoteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s %sd note %d", e.UserID, e.Operation, e.NoteID)
	}
	msg := fmt.Sprintf("%s tried to %s note %d", e.UserID, e.Operation, e.NoteID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e NoteEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e NoteEvent) Facility() int {
	return FacilityAuthPriv
}

func (e NoteEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"note": fmt.Sprintf("%d", e.NoteID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
}
