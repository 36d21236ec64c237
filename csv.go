// Copyright (c) The parexec Authors. All rights reserved.
// Licensed under the MIT License.

package parexec

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteTimingsCSV truncates (or creates) path and writes one header row
// plus one row per timing record, in the column layout documented for
// timings.csv: work_i, idle_i, heavy_i for i in [0, WorkerCount), then
// chunk_time, total_idle, total_heavy.
//
// encoding/csv is used rather than a third-party CSV library because
// nothing in the retrieved corpus reaches for one for this kind of flat,
// header-plus-rows output — see DESIGN.md.
func WriteTimingsCSV(path string, timings []TimingRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("parexec: creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write(timingsHeader())
	for _, rec := range timings {
		if err := w.Write(timingsRow(rec)); err != nil {
			return fmt.Errorf("parexec: writing %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

func timingsHeader() []string {
	header := make([]string, 0, 3*WorkerCount+3)
	for i := 0; i < WorkerCount; i++ {
		header = append(header,
			fmt.Sprintf("work_%d", i),
			fmt.Sprintf("idle_%d", i),
			fmt.Sprintf("heavy_%d", i),
		)
	}
	header = append(header, "chunk_time", "total_idle", "total_heavy")
	return header
}

func timingsRow(rec TimingRecord) []string {
	row := make([]string, 0, 3*WorkerCount+3)
	for i := 0; i < WorkerCount; i++ {
		idle := rec.TotalChunkTime - rec.WorkTime[i]
		row = append(row,
			formatFloat(rec.WorkTime[i]),
			formatFloat(idle),
			strconv.Itoa(rec.HeavyCount[i]),
		)
	}
	row = append(row,
		formatFloat(rec.TotalChunkTime),
		formatFloat(rec.TotalIdle()),
		strconv.Itoa(rec.TotalHeavy()),
	)
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
