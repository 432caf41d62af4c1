// Package zone связывает ячейки сетки с сохраненными зонами по имени.
package zone

import (
	"fmt"
	"strconv"
)

// RowLetter возвращает буквенное обозначение строки: A для 0, B для 1, ... Z, AA, AB, ...
func RowLetter(row int) string {
	if row < 0 {
		return ""
	}
	var buf []byte
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}

// Name - имя ячейки в формате "{level}-{letter(row)}{col+1}", например "1F-A1"
func Name(level string, row, col int) string {
	return fmt.Sprintf("%s-%s%s", level, RowLetter(row), strconv.Itoa(col+1))
}
