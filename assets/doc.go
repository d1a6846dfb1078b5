// Package assets holds baked bitmap resources for demos and tests.
//
// Files in this package are generated with:
//
//	fbtool bake -go -pkg assets <image>
package assets
