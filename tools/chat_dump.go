package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"chat-relay/infrastructure/http/client"

	"github.com/olekukonko/tablewriter"
)

// chat_dump prints the server log as a table, for a quick look at a
// running room without joining it.
func main() {
	serverURL := flag.String("server", "http://localhost:8080", "Chat server base URL")
	since := flag.Int("since", -1, "Only dump messages with an index greater than this")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	api := client.NewAPI(*serverURL, *timeout)

	result, err := api.Poll(*since)
	if err != nil {
		log.Fatal("Error while fetching messages: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Timestamp", "Username", "Message"})
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

	for _, message := range result.Messages {
		table.Append([]string{
			strconv.Itoa(message.Index),
			message.Timestamp,
			message.Username,
			message.Message,
		})
	}

	table.Render()
	fmt.Printf("\n%d messages on the server, %d dumped\n", result.Count, len(result.Messages))
}
