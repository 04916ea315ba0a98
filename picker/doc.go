// Package picker selects the next quiz question from a candidate set while
// skipping identifiers that were already asked.
//
// Selection is uniform over the remaining candidates and compares records by
// identifier only. Running out of candidates is reported with a false result,
// which callers turn into an in-band "no more questions" reply rather than an
// HTTP failure.
//
//	q, ok := picker.Next(questions, picker.NewIDSet(prev...), nil)
//	if !ok {
//	    // exhausted
//	}
//
// Session wraps the same call in a small state machine that moves from
// AwaitingAnswer to SessionComplete on exhaustion and grows its exclusion set
// after every pick.
package picker
