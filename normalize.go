package gpm

import "strings"

// separator joins the canonical target and login into one comparison string.
const separator = "|"

// schemePrefixes are stripped once from the front of a target.
var schemePrefixes = []string{"ftp://", "http://", "https://"}

// blanks removes every space and tab character.
var blanks = strings.NewReplacer(" ", "", "\t", "")

// Normalize canonicalizes a login target and login id into the single string
// the derivation pipeline encodes.
//
// The target is lowercased, stripped of blanks, stripped of a single leading
// URL scheme (ftp, http or https) and of any trailing slashes. The login id
// is lowercased and stripped of blanks. Equivalent spellings of one login
// therefore derive the same password: "HTTPS://Example.com/" and
// "example.com" normalize identically.
func Normalize(target, login string) string {
	return normalizeTarget(target) + separator + normalizeLogin(login)
}

func normalizeTarget(target string) string {
	t := blanks.Replace(strings.ToLower(target))
	for _, prefix := range schemePrefixes {
		if strings.HasPrefix(t, prefix) {
			t = t[len(prefix):]
			break
		}
	}
	return strings.TrimRight(t, "/")
}

func normalizeLogin(login string) string {
	return blanks.Replace(strings.ToLower(login))
}
