package ticket

// legacyScreenXCode is the deprecated facility code the purchase system
// still emits for SCREEN X showings.
const legacyScreenXCode = "SCREEN X PREMIUM THEATER"

// NormalizeFacility rewrites the legacy SCREEN X facility pair to its
// canonical form and passes every other input through unchanged.
// Interim fix until the purchase system stops sending the old code.
func NormalizeFacility(code, name string) (string, string) {
	if code == legacyScreenXCode {
		return "SCREEN X", "SCREEN X"
	}
	return code, name
}
