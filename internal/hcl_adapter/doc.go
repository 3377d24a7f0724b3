// Package hcl_adapter loads manifests written in HCL.
//
//	project = "pointnet"
//
//	category "feature_store" {}
//
//	component "module" "encoder" {
//	  strategy   = "params"
//	  depends_on = ["dataset.train"]
//
//	  params {
//	    layers = 4
//	  }
//
//	  param "layers" {
//	    type    = number
//	    default = 2
//	  }
//	}
package hcl_adapter
