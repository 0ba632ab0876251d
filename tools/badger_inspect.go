package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// badger_inspect dumps the portal's key space in a readable table.
// Usage: go run ./tools -db /tmp/campus-chat -prefix msg:
func main() {
	dbPath := flag.String("db", "/tmp/campus-chat", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Prefix to scan (msg:, chat:, user:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Entity ID", "Detail"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			// Secondary indexes carry no payload worth printing.
			if strings.HasPrefix(rawKey, "direct:") || strings.HasPrefix(rawKey, "useremail:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				table.Append(rowFor(rawKey, v))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func rowFor(rawKey string, value []byte) []string {
	switch {
	case strings.HasPrefix(rawKey, "msg:"):
		var m struct {
			ID      string    `json:"id"`
			Sender  string    `json:"sender"`
			Content string    `json:"content"`
			Kind    string    `json:"kind"`
			At      time.Time `json:"at"`
		}
		if err := json.Unmarshal(value, &m); err != nil {
			return []string{rawKey, "MSG", "", "", fmt.Sprintf("unmarshal error: %v", err)}
		}
		return []string{rawKey, strings.ToUpper(m.Kind), m.At.Format("15:04:05"), shortID(m.ID),
			fmt.Sprintf("%s: %s", m.Sender, truncate(m.Content, 60))}

	case strings.HasPrefix(rawKey, "chat:"):
		var c struct {
			ID           string    `json:"id"`
			Name         string    `json:"name"`
			Participants []string  `json:"participants"`
			CreatedAt    time.Time `json:"createdAt"`
		}
		if err := json.Unmarshal(value, &c); err != nil {
			return []string{rawKey, "CHAT", "", "", fmt.Sprintf("unmarshal error: %v", err)}
		}
		detail := strings.Join(c.Participants, ", ")
		if c.Name != "" {
			detail = c.Name + " [" + detail + "]"
		}
		return []string{rawKey, "CHAT", c.CreatedAt.Format("15:04:05"), shortID(c.ID), detail}

	case strings.HasPrefix(rawKey, "user:"):
		var u struct {
			ID        string    `json:"id"`
			Email     string    `json:"email"`
			Name      string    `json:"name"`
			Roles     []string  `json:"roles"`
			CreatedAt time.Time `json:"createdAt"`
		}
		if err := json.Unmarshal(value, &u); err != nil {
			return []string{rawKey, "USER", "", "", fmt.Sprintf("unmarshal error: %v", err)}
		}
		return []string{rawKey, "USER", u.CreatedAt.Format("15:04:05"), shortID(u.ID),
			fmt.Sprintf("%s <%s> %v", u.Name, u.Email, u.Roles)}

	default:
		return []string{rawKey, "?", "", "", truncate(string(value), 60)}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
