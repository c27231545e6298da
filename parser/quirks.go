package parser

import "strings"

// quirksPublicIDPrefixes is the legacy-DTD prefix table consulted by "the
// initial insertion mode" to classify a DOCTYPE into full quirks mode. Each
// entry is compared against the DOCTYPE token's public identifier,
// ASCII-case-insensitively, as a prefix.
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-initial
var quirksPublicIDPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var quirksPublicIDExact = map[string]bool{
	"-//w3o//dtd w3 html strict 3.0//en//": true,
	"-/w3c/dtd html 4.0 transitional/en":    true,
	"html":                                  true,
}

// limitedQuirksPublicIDPrefixes force limited-quirks mode (unless the
// system identifier makes the DOCTYPE full-quirks first).
var limitedQuirksPublicIDPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

// limitedQuirksWithSystemIDPublicIDPrefixes force limited-quirks mode only
// when a system identifier is present.
var limitedQuirksWithSystemIDPublicIDPrefixes = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

const quirksSystemID = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// classifyDoctypeQuirks implements the quirks-mode classification table
// consulted from the DOCTYPE branch of the Initial insertion mode.
func classifyDoctypeQuirks(tok Token) (quirks, limitedQuirks bool) {
	if tok.ForceQuirks {
		return true, false
	}
	if tok.TagName != "html" {
		return true, false
	}

	pub := strings.ToLower(tok.PublicIdentifier)
	sys := strings.ToLower(tok.SystemIdentifier)
	sysPresent := tok.SystemIdentifier != missing

	if quirksPublicIDExact[pub] {
		return true, false
	}
	if sys == quirksSystemID {
		return true, false
	}
	if hasAnyPrefix(pub, quirksPublicIDPrefixes) {
		return true, false
	}
	if !sysPresent && hasAnyPrefix(pub, limitedQuirksWithSystemIDPublicIDPrefixes) {
		return true, false
	}
	if hasAnyPrefix(pub, limitedQuirksPublicIDPrefixes) {
		return false, true
	}
	if sysPresent && hasAnyPrefix(pub, limitedQuirksWithSystemIDPublicIDPrefixes) {
		return false, true
	}
	return false, false
}
