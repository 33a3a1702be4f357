package reward

import "regexp"

// triggerPattern matches subject names of the shape
// "report<ID>complete-<target>", capturing the trigger identifier and the
// target username.
var triggerPattern = regexp.MustCompile(`^report(.*?)complete-(.+)$`)

// ParseTrigger extracts the trigger identifier and target username from a
// subject name. ok is false when the subject is not a reward trigger;
// that is a normal outcome, not an error.
func ParseTrigger(subject string) (triggerID, target string, ok bool) {
	m := triggerPattern.FindStringSubmatch(subject)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
