package txanalysis

import "strings"

// unknownDEX is the venue label used when a transaction's destination does
// not match any known router or pool address.
const unknownDEX = "Unknown DEX"

// knownDEXRouters maps lowercased router and aggregator contract addresses
// to display names. The lookup is exact: no bytecode inspection, no factory
// resolution.
var knownDEXRouters = map[string]string{
	"0x7a250d5630b4cf539739df2c5dacb4c659f2488d": "Uniswap V2",
	"0xe592427a0aece92de3edee1f18e0157c05861564": "Uniswap V3",
	"0x68b3465833fb72a70ecdf485e0e4c7bd8665fc45": "Uniswap V3",
	"0xef1c6e67703c7bd7107eed8303fbe6ec2554bf6b": "Uniswap Universal Router",
	"0x3fc91a3afd70395cd496c647d5a6cc9d4b2b7fad": "Uniswap Universal Router",
	"0xd9e1ce17f2641f24ae83637ab66a2cca9c378b9f": "SushiSwap",
	"0x1111111254eeb25477b68fb85ed929f73a960582": "1inch",
	"0xdef1c0ded9bec7f1a1670819833240f027b25eff": "0x Protocol",
	"0x881d40237659c251811cec9c364ef91dc08d300c": "Metamask Swap",
}

// venueName resolves the DEX display name for a transaction's destination
// address. It never fails: unmatched destinations yield the generic
// "Unknown DEX" label.
func venueName(to string) string {
	if name, ok := knownDEXRouters[strings.ToLower(to)]; ok {
		return name
	}
	return unknownDEX
}
