package main

import (
	"chat-relay/directory"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Lists the registered users stored in Badger. Safe to run while the
// server holds the lock thanks to BypassLockGuard.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("Registered users"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"UUID", "Username", "Created At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	store := directory.NewStore(db)
	count := 0
	err = store.ForEachUser(func(record directory.Record) error {
		// Shorten the UUID for readability
		displayID := record.UUID
		if len(displayID) > 8 {
			displayID = displayID[:8]
		}
		table.Append([]string{
			displayID,
			record.Username,
			record.CreatedAt.Format(time.RFC822),
		})
		count++
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Printf("\n%d user(s)\n", count)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
