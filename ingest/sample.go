package ingest

import "github.com/gitmvp-com/simple-data-viz/dataset"

// SampleCSV is the bundled demo table: 8 rows of name, age, score, city.
const SampleCSV = `name,age,score,city
Alice,25,85,New York
Bob,30,92,San Francisco
Charlie,22,78,Boston
Diana,28,88,Seattle
Eve,35,95,Austin
Frank,29,82,Denver
Grace,26,90,Portland
Henry,31,87,Chicago`

// Sample loads SampleCSV through the regular CSV path.
func Sample() (*dataset.Dataset, error) {
	return ParseCSV(SampleCSV)
}
