// Package api provides the T-Invest InstrumentsService REST client.
//
// Endpoints:
//   - Production: https://invest-public-api.tbank.ru/rest
//   - Sandbox:    https://sandbox-invest-public-api.tbank.ru/rest
//
// Every operation is a POST of a JSON body to
// {base}/tinkoff.public.invest.api.contract.v1.InstrumentsService/{Operation}.
// The operation table in catalog.go drives encoding, dispatch and decoding;
// the typed methods (Bonds, BondBy, ...) are thin wrappers over it.
//
// Calls block until the remote call resolves. CallMany and Go issue calls
// concurrently over the same Session.
package api
