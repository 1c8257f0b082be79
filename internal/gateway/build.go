package gateway

import "fmt"

// Builders are pure functions over validated metadata. Callers are expected
// to run Metadata.Validate first; a zero field that slips through produces a
// structurally wrong document, not a panic.

// buildIngress composes the parts of the Ingress shared by both certificate
// variants: the static IP annotation and the backend service reference.
func buildIngress(md Metadata) Document {
	return DeepMerge(ingressBase(), Document{
		"metadata": Document{
			"namespace": md.Namespace,
			"annotations": Document{
				AnnotationStaticIP: md.Gateway.IPName,
			},
		},
		"spec": Document{
			"defaultBackend": Document{
				"service": Document{
					"name": GatewayName,
					"port": Document{
						"number": md.Gateway.Port,
					},
				},
			},
		},
	})
}

// BuildManagedCertIngress composes the managed-certificate ingress variant.
// The result couples the Ingress with the ManagedCertificate it references:
// the "ingress" entry carries the managed-certificates annotation and the
// "managedCert" entry declares exactly one domain, the gateway hostname.
func BuildManagedCertIngress(md Metadata) Document {
	ingress := DeepMerge(buildIngress(md), Document{
		"metadata": Document{
			"annotations": Document{
				AnnotationManagedCerts: CertificateName,
			},
		},
	})

	cert := DeepMerge(certificateBase(), Document{
		"metadata": Document{
			"namespace": md.Namespace,
		},
		"spec": Document{
			"domains": []any{md.Gateway.Hostname},
		},
	})

	return Document{
		"ingress":     ingress,
		"managedCert": cert,
	}
}

// BuildPresharedCertIngress composes the preshared-certificate ingress
// variant. certName is the externally supplied certificate resource name;
// no ManagedCertificate document is produced.
func BuildPresharedCertIngress(md Metadata, certName string) Document {
	return DeepMerge(buildIngress(md), Document{
		"metadata": Document{
			"annotations": Document{
				AnnotationPresharedCert: certName,
			},
		},
	})
}

// BuildService composes the NodePort Service exposing the gateway port,
// tagged for metric collection.
func BuildService(md Metadata) Document {
	return DeepMerge(serviceBase(), Document{
		"metadata": Document{
			"namespace": md.Namespace,
		},
		"spec": Document{
			"ports": []any{
				Document{
					"name": "http",
					"port": md.Gateway.Port,
				},
			},
		},
	})
}

// BuildDeployment composes the gateway Deployment. The container args encode
// the backend address, the listen address, and nothing else; the readiness
// probe checks /healthy on the gateway port.
func BuildDeployment(md Metadata) Document {
	return DeepMerge(deploymentBase(), Document{
		"metadata": Document{
			"namespace": md.Namespace,
		},
		"spec": Document{
			"template": Document{
				"spec": Document{
					"containers": []any{
						Document{
							"name":  GatewayName,
							"image": md.Gateway.Image,
							"args": []any{
								"http-gateway",
								fmt.Sprintf("-grpc-backend=grpc-backend.%s:%d", md.Namespace, md.Backend.Port),
								fmt.Sprintf("-addr=:%d", md.Gateway.Port),
							},
							"ports": []any{
								Document{
									"name":          "http",
									"containerPort": md.Gateway.Port,
								},
							},
							"readinessProbe": Document{
								"httpGet": Document{
									"path": "/healthy",
									"port": md.Gateway.Port,
								},
							},
						},
					},
				},
			},
		},
	})
}

// BuildAll composes the default full bundle for one gateway: the
// managed-certificate ingress variant plus the service and deployment.
// The result has exactly three top-level keys.
func BuildAll(md Metadata) Document {
	return Document{
		"ingress":    BuildManagedCertIngress(md),
		"service":    BuildService(md),
		"deployment": BuildDeployment(md),
	}
}
