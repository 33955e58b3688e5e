package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/amortization-go/internal/amortization"
)

// FileName имя файла для скачивания таблицы
const FileName = "tabla_amortizacion.csv"

// Header заголовок таблицы амортизации
var Header = []string{"Mes", "Saldo Inicial", "Cuota", "Interés", "Abono a Capital", "Saldo Final"}

// WriteCSV пишет график в CSV: строка заголовка и по строке на период,
// суммы округлены до 2 знаков
func WriteCSV(w io.Writer, schedule []amortization.ScheduleRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range schedule {
		record := []string{
			strconv.Itoa(row.Period),
			money(row.OpeningBalance),
			money(row.Installment),
			money(row.InterestPortion),
			money(row.PrincipalPortion),
			money(row.ClosingBalance),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", row.Period, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func money(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
