// Package config loads the YAML configuration of the mysql-typemap tool.
//
// # Schema Overview
//
//	version: "1"
//	resolver:
//	  inline_size_ceiling: 8000   # largest inline binary size
//	  default_text_length: 255    # varchar length when none is declared
//	tag: mysql                    # struct tag holding column constraints
//	format: text                  # report format: text or yaml
//
// Every field is optional; missing fields take the defaults shown above.
package config
