package config

import (
	"fmt"
	"io"
)

// Usage writes the help text for progname.
func Usage(w io.Writer, progname string) {
	fmt.Fprintf(w, "[Usage]\n  $ %s [options]\n\n", progname)
	fmt.Fprint(w, `[Options]
  -c COLUMN_SIZE, --column=COLUMN_SIZE
    Specify column size
  -h, --help
    Show help and exit
  -l LEVEL, --level=LEVEL
    Specify level of minesweeper
    [Levels]
      easy:
        row size is 10, column size is 10 and number of mine is 10
      normal:
        row size is 16, column size is 16 and number of mine is 40
      hard:
        row size is 16, column size is 30 and number of mine is 99
  -m MODE, --mode=MODE
    Specify mode
    [Modes]
      cursor:
        You can move cursor
          'h': Move cursor left
          'j': Move cursor down
          'k': Move cursor up
          'l': Move cursor right
          'o': Open a panel under the cursor
          'f': Flag a panel under the cursor
      prompt:
        Show prompt and you have to input command and coordinate
        [Command]
          open: Open a panel
          flag: Flag a panel
  -n N_MINE, --n-mine=N_MINE
    Specify the number of mines
  -r ROW_SIZE, --row=ROW_SIZE
    Specify row size
  -s SEED, --seed=SEED
    Seed the mine layout (0 seeds from the clock)
  --config=FILE
    Read settings from a yaml, toml or json file
  --env-file=FILE
    Load MINESWEEPER_ variables from a dotenv file
  --log-level=LEVEL, --log-file=FILE
    Write logs of the given level to FILE

Every option can also be set with a MINESWEEPER_ environment variable,
e.g. MINESWEEPER_N_MINE=20.
`)
}
