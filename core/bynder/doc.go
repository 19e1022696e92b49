// Package bynder implements the asset provider collaborator: a thin client
// for the Bynder media API.
//
// The engine only depends on the Client interface (fetch one asset, fetch a
// page of assets). The HTTP implementation authenticates with OAuth2 client
// credentials and exposes Bynder metaproperties ("property_*" response keys)
// through the Asset.Properties map.
//
// # Usage
//
//	client, err := bynder.NewClient(cfg.Bynder)
//	asset, err := client.AssetByID(ctx, "73843ABB-B585-40C3-A9E217C9C06CD23C")
//	fmt.Println(asset.OriginalFileName())
package bynder
