// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/relee/parexec"
	"github.com/stretchr/testify/require"
)

func TestWriteTimingsCSVColumnLayout(t *testing.T) {
	chk := require.New(t)

	timings := []parexec.TimingRecord{
		{
			WorkTime:       [parexec.WorkerCount]float64{0.1, 0.2, 0.15, 0.05},
			HeavyCount:     [parexec.WorkerCount]int{1, 2, 0, 3},
			TotalChunkTime: 0.2,
		},
		{
			WorkTime:       [parexec.WorkerCount]float64{0.05, 0.05, 0.05, 0.05},
			HeavyCount:     [parexec.WorkerCount]int{0, 0, 0, 0},
			TotalChunkTime: 0.05,
		},
	}

	path := filepath.Join(t.TempDir(), "timings.csv")
	chk.NoError(parexec.WriteTimingsCSV(path, timings))

	f, err := os.Open(path)
	chk.NoError(err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	chk.NoError(err)
	chk.Len(rows, len(timings)+1)

	wantColumns := 3*parexec.WorkerCount + 3
	for _, row := range rows {
		chk.Len(row, wantColumns)
	}

	header := rows[0]
	chk.Equal("work_0", header[0])
	chk.Equal("idle_0", header[1])
	chk.Equal("heavy_0", header[2])
	chk.Equal("chunk_time", header[wantColumns-3])
	chk.Equal("total_idle", header[wantColumns-2])
	chk.Equal("total_heavy", header[wantColumns-1])
}

func TestWriteTimingsCSVEmptyTimings(t *testing.T) {
	chk := require.New(t)

	path := filepath.Join(t.TempDir(), "timings.csv")
	chk.NoError(parexec.WriteTimingsCSV(path, nil))

	f, err := os.Open(path)
	chk.NoError(err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	chk.NoError(err)
	chk.Len(rows, 1)
}
