// Package serialnum davetli seri numarası (FQ-###) üretim ve çözümleme
// yardımcılarını içerir.
package serialnum

import (
	"fmt"
	"regexp"
	"strconv"
)

// Prefix tüm davetli seri numaralarının başına gelen sabit.
const Prefix = "FQ-"

var pattern = regexp.MustCompile(`^FQ-(\d+)$`)

// Format verilen sayıdan seri numarası üretir. 999'a kadar üç haneye
// sıfır ile doldurulur, sonrasında hane sayısı kendiliğinden genişler.
func Format(n uint64) string {
	return fmt.Sprintf("%s%03d", Prefix, n)
}

// Parse bir seri numarasının sayısal ekini çözer.
// FQ-### kalıbına uymayan değerler için ok=false döner.
func Parse(sn string) (uint64, bool) {
	m := pattern.FindStringSubmatch(sn)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
