package domain

// ComplianceError signalisiert eine fehlende Pflichtangabe nach den deutschen
// Rechnungsanforderungen (§14 UStG). Die Generierung wird in diesem Fall
// abgebrochen, bevor Render-Ressourcen angefasst werden.
type ComplianceError struct {
	Reason string
}

func (e *ComplianceError) Error() string {
	return "pflichtangaben verletzt: " + e.Reason
}

// ──────────────────────────────────────────────────────────────────────────────
// Domänenfehler
// ──────────────────────────────────────────────────────────────────────────────

var (
	// ErrMissingTaxIdentifier weder Steuernummer noch USt-IdNr. angegeben.
	ErrMissingTaxIdentifier = &ComplianceError{Reason: "mindestens eine Steuerkennung (Steuernummer oder USt-IdNr.) ist erforderlich"}

	// ErrNoLineItems die Rechnung enthält keine Positionen.
	ErrNoLineItems = &ComplianceError{Reason: "mindestens eine Rechnungsposition ist erforderlich"}
)
