// Copyright (c) WithSecure Corporation
// https://foundry.withsecure.com
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package rt1160evk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usbarmory/imxrt-boot/mem"
	"github.com/usbarmory/imxrt-boot/mpu"
)

func configs() (c []Config) {
	for i := 0; i < 8; i++ {
		c = append(c, Config{
			XIPExternalFlash: i&1 != 0,
			SDRAM:            i&2 != 0,
			WriteThrough:     i&4 != 0,
		})
	}

	return
}

func indices(t mpu.Table) (idx []int) {
	for _, r := range t {
		idx = append(idx, r.Index)
	}

	return
}

func TestStaticRegionsInvariants(t *testing.T) {
	for _, cfg := range configs() {
		tbl := StaticRegions(cfg)
		msg := fmt.Sprintf("%+v", cfg)

		require.NoError(t, tbl.Validate(mpu.MaxRegions), msg)

		for _, r := range tbl {
			e, err := mpu.SizeClass(r.Size)
			require.NoError(t, err, msg)
			assert.GreaterOrEqual(t, e, mpu.MinSizeShift, msg)
			assert.Zero(t, uint64(r.Base)%r.Size, msg)
		}

		// already sorted
		assert.Equal(t, indices(tbl.Sorted()), indices(tbl), msg)
		assert.Equal(t, tbl, StaticRegions(cfg), msg)
	}
}

func TestStaticRegionsOptional(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 11, 12, 13, 14, 15}, indices(StaticRegions(Config{})))
	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 11, 12, 13, 14, 15}, indices(StaticRegions(Config{XIPExternalFlash: true})))
	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 15}, indices(StaticRegions(Config{XIPExternalFlash: true, SDRAM: true})))

	xip, _ := StaticRegions(Config{XIPExternalFlash: true}).Lookup(FlexSPIRegion)
	assert.Equal(mpu.AP_RO, xip.AccessPermission)
	assert.Equal(mpu.NormalWriteBack, xip.Attributes)
	assert.Equal(uint32(mem.FlexSPIStart), xip.Base)
}

func TestStaticRegionsCachePolicy(t *testing.T) {
	assert := assert.New(t)

	wb := StaticRegions(Config{SDRAM: true})
	wt := StaticRegions(Config{SDRAM: true, WriteThrough: true})

	for _, i := range []int{6, 7, SDRAMRegion} {
		r, ok := wb.Lookup(i)
		require.True(t, ok)
		assert.Equal(mpu.NormalWriteBack, r.Attributes, i)

		r, ok = wt.Lookup(i)
		require.True(t, ok)
		assert.Equal(mpu.NormalWriteThrough, r.Attributes, i)
	}

	// TCMs are write-back regardless of policy
	for _, i := range []int{4, 5} {
		r, _ := wt.Lookup(i)
		assert.Equal(mpu.NormalWriteBack, r.Attributes, i)
	}
}

func TestStaticRegionsDenyAll(t *testing.T) {
	r, ok := StaticRegions(Config{}).Lookup(DenyAllRegion)
	require.True(t, ok)

	assert.Equal(t, uint64(1<<32), r.Size)
	assert.True(t, r.ExecDisable)
	assert.Equal(t, mpu.AP_NONE, r.AccessPermission)
	assert.Equal(t, uint32(0x1000003f), r.RASR())
}

func TestResolveNonCacheRegion(t *testing.T) {
	assert := assert.New(t)

	r, err := ResolveNonCacheRegion(0x202c0000, 0x20300000)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(NonCacheRegion, r.Index)
	assert.Equal(uint32(0x202c0000), r.Base)
	assert.Equal(uint64(0x40000), r.Size)
	assert.Equal(mpu.AP_FULL, r.AccessPermission)
	assert.Equal(mpu.NormalNonCacheable, r.Attributes)
	assert.False(r.ExecDisable)

	e, err := mpu.SizeClass(r.Size)
	require.NoError(t, err)
	assert.Equal(18, e)

	r, err = ResolveNonCacheRegion(0x20240000, 0x20240000)
	assert.NoError(err)
	assert.Nil(r)

	r, err = ResolveNonCacheRegion(0x20240000, 0x20240001)
	assert.NoError(err)
	assert.Nil(r)

	table := []struct {
		start uint32
		end   uint32
		err   error
	}{
		{start: 0x20220000, end: 0x20260000, err: mpu.ErrRegionAlignment},
		{start: 0x20200000, end: 0x20230000, err: mpu.ErrRegionSize},
		{start: 0x20200000, end: 0x20200010, err: mpu.ErrRegionSize},
		{start: 0x20200000, end: 0x20200002, err: mpu.ErrRegionSize},
		{start: 0x20240000, end: 0x20200000, err: mpu.ErrRegionSize},
	}

	for _, tc := range table {
		r, err := ResolveNonCacheRegion(tc.start, tc.end)
		assert.ErrorIs(err, tc.err, fmt.Sprintf("%+v", tc))
		assert.Nil(r)
	}
}

func TestRegions(t *testing.T) {
	assert := assert.New(t)
	cfg := Config{XIPExternalFlash: true}

	tbl, err := Regions(cfg, mem.NonCacheStart, mem.NonCacheStart+mem.NonCacheSize)
	require.NoError(t, err)

	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15}, indices(tbl))
	require.NoError(t, tbl.Validate(mpu.MaxRegions))

	// the non-cacheable segment overrides the OCRAM write-back region
	r, ok := tbl.Resolve(mem.NonCacheStart + 0x100)
	require.True(t, ok)
	assert.Equal(NonCacheRegion, r.Index)

	r, ok = tbl.Resolve(mem.NonCacheStart - 0x100)
	require.True(t, ok)
	assert.Equal(6, r.Index)

	// peripherals override the deny-all and low device windows
	r, ok = tbl.Resolve(GPIO9_DR)
	require.True(t, ok)
	assert.Equal(11, r.Index)

	// empty segment, table unchanged from the static baseline
	tbl, err = Regions(cfg, mem.NonCacheStart, mem.NonCacheStart)
	require.NoError(t, err)
	assert.Equal(StaticRegions(cfg), tbl)
	_, ok = tbl.Lookup(NonCacheRegion)
	assert.False(ok)

	_, err = Regions(cfg, 0x20220000, 0x20260000)
	assert.ErrorIs(err, mpu.ErrRegionAlignment)
}
