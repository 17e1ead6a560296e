/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package offer

import "errors"

var (
	ErrNotPending     = errors.New("offer is already finalized")
	ErrIssuingClaimed = errors.New("offer is being issued")
)
