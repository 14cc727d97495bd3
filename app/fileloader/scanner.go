package fileloader

// scanRecords splits delimited text into records of fields, honoring the
// configured quote rune. A quoted field may contain the delimiter,
// carriage returns and newlines; a doubled quote rune inside a quoted
// field yields one literal quote. Blank records (empty lines) are
// skipped, matching the behavior of the recorder's own reader.
func scanRecords(data []byte, opts Options) [][]string {
	text := []rune(string(data))
	delim := opts.Delimiter
	quote := opts.Quote

	var records [][]string
	var record []string
	var field []rune
	fieldQuoted := false

	endField := func() {
		record = append(record, string(field))
		field = field[:0]
		fieldQuoted = false
	}
	endRecord := func() {
		quoted := fieldQuoted
		endField()
		// A record consisting of a single empty unquoted field is a
		// blank line
		if len(record) == 1 && record[0] == "" && !quoted {
			record = nil
			return
		}
		records = append(records, record)
		record = nil
	}

	for i := 0; i < len(text); i++ {
		r := text[i]
		switch {
		case r == quote && len(field) == 0 && !fieldQuoted:
			// Opening quote: consume until the closing quote
			fieldQuoted = true
			i++
			for i < len(text) {
				if text[i] == quote {
					if i+1 < len(text) && text[i+1] == quote {
						field = append(field, quote)
						i += 2
						continue
					}
					break
				}
				field = append(field, text[i])
				i++
			}
			// Anything between the closing quote and the next
			// delimiter or newline is taken literally
		case r == delim:
			endField()
		case r == '\n':
			if len(field) > 0 && field[len(field)-1] == '\r' {
				field = field[:len(field)-1]
			}
			endRecord()
		default:
			field = append(field, r)
		}
	}
	// Final record without a trailing newline
	if len(field) > 0 || len(record) > 0 {
		endRecord()
	}

	return records
}
