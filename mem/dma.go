// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mem

import (
	"github.com/usbarmory/tamago/dma"
)

// Init sets the non-cacheable segment as default DMA region, buffers shared
// with bus controllers are therefore never cached. An empty segment leaves
// the default DMA region unchanged.
func Init(start uint32, size int) {
	if size <= 0 {
		return
	}

	dma.Init(start, size)
}
