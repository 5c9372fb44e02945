package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/allisson/cardcheck/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

// RunListNetworks prints the supported networks in match order.
func RunListNetworks(
	ctx context.Context,
	useCase cardUseCase.CardUseCase,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	networks, err := useCase.ListNetworks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list networks: %w", err)
	}

	response := dto.MapNetworksToListResponse(networks)
	if format == FormatJSON {
		return writeJSON(writer, response)
	}

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tPATTERN\tLENGTHS\tCVC\tLUHN")
	for _, network := range response.Data {
		lengths := "any"
		if len(network.Lengths) > 0 {
			lengths = joinInts(network.Lengths)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			network.Type, network.Pattern, lengths, joinInts(network.CVCLengths), network.Luhn)
	}
	return tw.Flush()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
