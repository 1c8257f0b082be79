package gateway

// Base templates for each resource kind. Builders layer metadata-derived
// overrides on top of these with DeepMerge; the bases carry everything that
// does not depend on the metadata record.

func ingressBase() Document {
	return Document{
		"apiVersion": "networking.k8s.io/v1",
		"kind":       "Ingress",
		"metadata": Document{
			"name": GatewayName,
		},
	}
}

func certificateBase() Document {
	return Document{
		"apiVersion": "networking.gke.io/v1",
		"kind":       "ManagedCertificate",
		"metadata": Document{
			"name": CertificateName,
		},
	}
}

func serviceBase() Document {
	return Document{
		"apiVersion": "v1",
		"kind":       "Service",
		"metadata": Document{
			"name": GatewayName,
			"annotations": Document{
				AnnotationPrometheusScrape: "true",
			},
		},
		"spec": Document{
			"type": "NodePort",
			"selector": Document{
				"app": GatewayName,
			},
		},
	}
}

func deploymentBase() Document {
	return Document{
		"apiVersion": "apps/v1",
		"kind":       "Deployment",
		"metadata": Document{
			"name": GatewayName,
		},
		"spec": Document{
			"replicas": 1,
			"selector": Document{
				"matchLabels": Document{
					"app": GatewayName,
				},
			},
			"template": Document{
				"metadata": Document{
					"labels": Document{
						"app": GatewayName,
					},
				},
			},
		},
	}
}
