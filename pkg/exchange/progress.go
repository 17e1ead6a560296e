/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

// Progress is the holder-visible projection of the event log.
type Progress struct {
	DisclosureComplete bool
	ExchangeComplete   bool
	// ExchangeError is the name of the trailing error state, empty if none.
	ExchangeError string
}

// ProjectProgress derives the progress of the exchange from its events.
// A COMPLETE event anywhere in the log suppresses errors recorded after it; otherwise
// an error is reported only when the last event is UNEXPECTED_ERROR or NOT_IDENTIFIED.
func ProjectProgress(ex *Exchange) Progress {
	var (
		p           Progress
		errorSeen   bool
		lastIsError bool
	)

	for _, ev := range ex.Events {
		lastIsError = false

		switch ev.State {
		case StateComplete:
			p.ExchangeComplete = true
		case StateIdentified, StateDisclosureChecked:
			if !errorSeen {
				p.DisclosureComplete = true
			}
		case StateNotIdentified:
			if !errorSeen {
				p.DisclosureComplete = true
			}

			lastIsError = true
		case StateUnexpectedError:
			errorSeen = true
			lastIsError = true
		}
	}

	if lastIsError && !p.ExchangeComplete {
		last, _ := ex.LastState()
		p.ExchangeError = string(last)
	}

	return p
}
