// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package rt1160evk

import (
	"fmt"

	"github.com/usbarmory/imxrt-boot/mem"
	"github.com/usbarmory/imxrt-boot/mpu"
)

// MPU region indices
const (
	DenyAllRegion  = 0
	FlexSPIRegion  = 8
	SDRAMRegion    = 9
	NonCacheRegion = 10
)

func device(index int, base uint32, size uint64) mpu.Region {
	return mpu.Region{
		Index:            index,
		Base:             base,
		Size:             size,
		AccessPermission: mpu.AP_FULL,
		Attributes:       mpu.Device,
	}
}

// StaticRegions returns the MPU regions fixed by the board configuration,
// the table is returned in ascending index order.
func StaticRegions(cfg Config) (t mpu.Table) {
	ram := cfg.ramAttributes()

	// Deny access to the whole address space to workaround speculative
	// prefetch (Arm errata 1013783-B), any other region overrides it.
	t = append(t, mpu.Region{
		Index:            DenyAllRegion,
		Base:             0,
		Size:             mpu.Size(mpu.MaxSizeShift),
		ExecDisable:      true,
		AccessPermission: mpu.AP_NONE,
		Attributes:       mpu.StronglyOrdered,
	})

	t = append(t,
		device(1, mem.SEMCStart, mem.SEMCSize),
		device(2, mem.FlexSPIWindowStart, mem.FlexSPIWindowSize),
		device(3, mem.LowWindowStart, mem.LowWindowSize),
	)

	t = append(t,
		mpu.Region{Index: 4, Base: mem.ITCMStart, Size: mem.ITCMSize, AccessPermission: mpu.AP_FULL, Attributes: mpu.NormalWriteBack},
		mpu.Region{Index: 5, Base: mem.DTCMStart, Size: mem.DTCMSize, AccessPermission: mpu.AP_FULL, Attributes: mpu.NormalWriteBack},
		mpu.Region{Index: 6, Base: mem.OCRAMStart, Size: mem.OCRAMSize, AccessPermission: mpu.AP_FULL, Attributes: ram},
		mpu.Region{Index: 7, Base: mem.OCRAMM7Start, Size: mem.OCRAMM7Size, AccessPermission: mpu.AP_FULL, Attributes: ram},
	)

	if cfg.XIPExternalFlash {
		t = append(t, mpu.Region{
			Index:            FlexSPIRegion,
			Base:             mem.FlexSPIStart,
			Size:             mem.FlexSPISize,
			AccessPermission: mpu.AP_RO,
			Attributes:       mpu.NormalWriteBack,
		})
	}

	if cfg.SDRAM {
		t = append(t, mpu.Region{
			Index:            SDRAMRegion,
			Base:             mem.SDRAMStart,
			Size:             mem.SDRAMSize,
			AccessPermission: mpu.AP_FULL,
			Attributes:       ram,
		})
	}

	t = append(t,
		device(11, mem.AIPS1Start, mem.AIPS1Size),
		device(12, mem.AIPS2Start, mem.AIPS2Size),
		device(13, mem.AIPS3Start, mem.AIPS3Size),
		device(14, mem.AIPS4Start, mem.AIPS4Size),
		device(15, mem.GPIOM7Start, mem.GPIOM7Size),
	)

	return
}

// ResolveNonCacheRegion returns the non-cacheable region covering the
// segment between start and end, or nil when the segment is empty or a
// single byte. The
// segment length must be a power of two, of at least 32 bytes, and start a
// multiple of it.
func ResolveNonCacheRegion(start uint32, end uint32) (r *mpu.Region, err error) {
	if end < start {
		return nil, fmt.Errorf("non-cache segment, %w (end %#.8x before start %#.8x)", mpu.ErrRegionSize, end, start)
	}

	size := uint64(end - start)

	// a single byte encodes as 2^0, which the hardware cannot map
	if size <= 1 {
		return
	}

	if _, err = mpu.SizeClass(size); err != nil {
		return nil, fmt.Errorf("non-cache segment, %w", err)
	}

	if !mpu.Aligned(start, size) {
		return nil, fmt.Errorf("non-cache segment, %w (start:%#.8x size:%#x)", mpu.ErrRegionAlignment, start, size)
	}

	r = &mpu.Region{
		Index:            NonCacheRegion,
		Base:             start,
		Size:             size,
		AccessPermission: mpu.AP_FULL,
		Attributes:       mpu.NormalNonCacheable,
	}

	return
}

// Regions returns the complete MPU table, in ascending index order, for the
// board configuration and the non-cacheable segment between start and end.
func Regions(cfg Config, start uint32, end uint32) (t mpu.Table, err error) {
	nc, err := ResolveNonCacheRegion(start, end)

	if err != nil {
		return
	}

	t = StaticRegions(cfg)

	if nc != nil {
		t = append(t, *nc)
	}

	return t.Sorted(), nil
}

// ConfigureMPU programs and enables the MPU, with the background region
// enabled for privileged accesses, it must be called once at boot.
func ConfigureMPU(port mpu.Port, cfg Config, start uint32, end uint32) (t mpu.Table, err error) {
	if t, err = Regions(cfg, start, end); err != nil {
		return
	}

	s := &mpu.Sequencer{
		Port:    port,
		ICache:  cfg.ICache,
		DCache:  cfg.DCache,
		Control: 1 << mpu.CTRL_PRIVDEFENA,
	}

	err = s.Program(t)

	return
}
