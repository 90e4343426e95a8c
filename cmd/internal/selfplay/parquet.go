package selfplay

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// MoveRecord is one row of the per-move parquet export.
type MoveRecord struct {
	Run      string `parquet:"name=run, type=BYTE_ARRAY, convertedtype=UTF8"`
	Game     int32  `parquet:"name=game, type=INT32"`
	Seq      int32  `parquet:"name=seq, type=INT32"`
	Turn     int32  `parquet:"name=turn, type=INT32"`
	Seat     int32  `parquet:"name=seat, type=INT32"`
	Throw    string `parquet:"name=throw, type=BYTE_ARRAY, convertedtype=UTF8"`
	Token    string `parquet:"name=token, type=BYTE_ARRAY, convertedtype=UTF8"`
	From     string `parquet:"name=from, type=BYTE_ARRAY, convertedtype=UTF8"`
	To       string `parquet:"name=to, type=BYTE_ARRAY, convertedtype=UTF8"`
	Carried  int32  `parquet:"name=carried, type=INT32"`
	Captured int32  `parquet:"name=captured, type=INT32"`
	Won      bool   `parquet:"name=won, type=BOOLEAN"`
}

func moveRecords(run string, results []Result) []MoveRecord {
	var out []MoveRecord
	for _, r := range results {
		for i, m := range r.Moves {
			out = append(out, MoveRecord{
				Run:      run,
				Game:     int32(r.Game),
				Seq:      int32(i),
				Turn:     int32(m.Turn),
				Seat:     int32(m.Seat),
				Throw:    m.Throw.String(),
				Token:    m.Token,
				From:     m.From.String(),
				To:       m.To.String(),
				Carried:  int32(m.Carried),
				Captured: int32(m.Captured),
				Won:      m.Won,
			})
		}
	}
	return out
}

func WriteMoves(path string, records []MoveRecord, parallel int64) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(MoveRecord), parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}
